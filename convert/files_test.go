package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRDFFileToken(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"voc.ttl", "ttl"},
		{"voc.rdf", "xml"},
		{"voc.xml", "xml"},
		{"voc.json-ld", "json-ld"},
		{"voc.json", "json-ld"},
		{"voc.nt", "nt"},
		{"voc.n3", "n3"},
		{"VOC.TTL", "ttl"},
		{"voc.xlsx", ""},
		{"voc.txt", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RDFFileToken(tt.name), tt.name)
	}
}

func TestIsExcelFile(t *testing.T) {
	assert.True(t, IsExcelFile("voc.xlsx"))
	assert.True(t, IsExcelFile("VOC.XLSX"))
	assert.False(t, IsExcelFile("voc.xls"))
	assert.False(t, IsExcelFile("voc.ttl"))
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
}

func TestConvertibleFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.xlsx")
	touch(t, dir, "b.ttl")
	touch(t, dir, "notes.txt")

	files, err := ConvertibleFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a.xlsx"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.ttl"), files[1])
}

func TestMultiFormatBasenames(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "voc.xlsx")
	touch(t, dir, "voc.ttl")
	touch(t, dir, "other.ttl")

	dupes, err := MultiFormatBasenames(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"voc"}, dupes)
}

func TestMultiFormatBasenames_NoDuplicates(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.xlsx")
	touch(t, dir, "b.ttl")

	dupes, err := MultiFormatBasenames(dir)
	require.NoError(t, err)
	assert.Empty(t, dupes)
}
