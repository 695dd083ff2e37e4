package checks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LARAontologies/voc4cat-tool/config"
)

func vocabConfig(single bool, names ...string) *config.Config {
	cfg := &config.Config{SingleVocab: single, Vocabs: map[string]config.Vocab{}}
	for _, n := range names {
		cfg.Vocabs[n] = config.Vocab{
			IDLength:         7,
			PermanentIRIPart: "https://example.org/voc/",
			IDRange:          []config.IDRange{{FirstID: 1, LastID: 100, GHName: "octocat"}},
		}
	}
	return cfg
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
}

func TestValidateConfigHasIDRange(t *testing.T) {
	cfg := vocabConfig(false, "myvoc")
	assert.NoError(t, ValidateConfigHasIDRange(cfg, "myvoc"))
	assert.NoError(t, ValidateConfigHasIDRange(cfg, "MyVoc"))
	assert.Error(t, ValidateConfigHasIDRange(cfg, "othervoc"))
}

func TestValidateConfigHasIDRange_DefaultConfigSkips(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.NoError(t, ValidateConfigHasIDRange(cfg, "anything"))
}

func TestCheckInboxFileCount_SingleVocab(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.xlsx")
	touch(t, dir, "b.xlsx")

	err := CheckInboxFileCount(vocabConfig(true, "a"), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 xlsx files")

	assert.NoError(t, CheckInboxFileCount(vocabConfig(false, "a"), dir))
}

func TestCheckInboxFileCount_OneFilePasses(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.xlsx")
	assert.NoError(t, CheckInboxFileCount(vocabConfig(true, "a"), dir))
}

func TestValidateVocabularyNames_SkippedWithoutConfig(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "unknown.ttl")
	assert.NoError(t, ValidateVocabularyNames(config.DefaultConfig(), dir, dir))
}

func TestValidateVocabularyNames_AllConfigured(t *testing.T) {
	vocabDir := t.TempDir()
	inboxDir := t.TempDir()
	touch(t, vocabDir, "myvoc.ttl")
	touch(t, inboxDir, "MyVoc.xlsx")

	assert.NoError(t, ValidateVocabularyNames(vocabConfig(false, "myvoc"), vocabDir, inboxDir))
}

func TestValidateVocabularyNames_MissingConfig(t *testing.T) {
	vocabDir := t.TempDir()
	inboxDir := t.TempDir()
	touch(t, vocabDir, "myvoc.ttl")
	touch(t, inboxDir, "stray.xlsx")

	err := ValidateVocabularyNames(vocabConfig(false, "myvoc"), vocabDir, inboxDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stray")
}

func TestValidateVocabularyNames_SingleVocabMismatch(t *testing.T) {
	vocabDir := t.TempDir()
	inboxDir := t.TempDir()
	touch(t, vocabDir, "myvoc.ttl")
	touch(t, inboxDir, "othervoc.xlsx")

	err := ValidateVocabularyNames(vocabConfig(true, "myvoc", "othervoc"), vocabDir, inboxDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must match")
}

const prevTurtle = `@prefix skos: <http://www.w3.org/2004/02/skos/core#> .
<https://example.org/voc/0000001> a skos:Concept .
<https://example.org/voc/0000002> a skos:Concept .
<https://example.org/voc/types> a skos:Collection .
`

const nextTurtle = `@prefix skos: <http://www.w3.org/2004/02/skos/core#> .
<https://example.org/voc/0000001> a skos:Concept .
`

// writeRelease stores the same vocabulary file name in its own directory so
// prev and next can live side by side.
func writeRelease(t *testing.T, ttl string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "myvoc.ttl")
	require.NoError(t, os.WriteFile(path, []byte(ttl), 0644))
	return path
}

func TestCheckRemovedIRIs_ForbiddenRemoval(t *testing.T) {
	prev := writeRelease(t, prevTurtle)
	next := writeRelease(t, nextTurtle)

	err := CheckRemovedIRIs(vocabConfig(false, "myvoc"), prev, next)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden removal of 2")
}

func TestCheckRemovedIRIs_AllowedRemoval(t *testing.T) {
	prev := writeRelease(t, prevTurtle)
	next := writeRelease(t, nextTurtle)

	cfg := vocabConfig(false, "myvoc")
	v := cfg.Vocabs["myvoc"]
	v.Checks.AllowDelete = true
	cfg.Vocabs["myvoc"] = v

	assert.NoError(t, CheckRemovedIRIs(cfg, prev, next))
}

func TestCheckRemovedIRIs_NoRemovals(t *testing.T) {
	prev := writeRelease(t, nextTurtle)
	next := writeRelease(t, prevTurtle)

	assert.NoError(t, CheckRemovedIRIs(vocabConfig(false, "myvoc"), prev, next))
}

func TestCheckIDsInAllocatedRanges(t *testing.T) {
	path := writeRelease(t, prevTurtle)
	cfg := vocabConfig(false, "myvoc")

	assert.NoError(t, CheckIDsInAllocatedRanges(cfg, path, ""))
}

func TestCheckIDsInAllocatedRanges_OutsideRange(t *testing.T) {
	ttl := `@prefix skos: <http://www.w3.org/2004/02/skos/core#> .
<https://example.org/voc/0000101> a skos:Concept .
`
	path := writeRelease(t, ttl)
	cfg := vocabConfig(false, "myvoc") // allocated range is 1..100

	err := CheckIDsInAllocatedRanges(cfg, path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 concept IRIs")
}

func TestCheckIDsInAllocatedRanges_MalformedIdentifier(t *testing.T) {
	ttl := `@prefix skos: <http://www.w3.org/2004/02/skos/core#> .
<https://example.org/voc/short1> a skos:Concept .
`
	path := writeRelease(t, ttl)

	err := CheckIDsInAllocatedRanges(vocabConfig(false, "myvoc"), path, "")
	require.Error(t, err)
}

func TestCheckIDsInAllocatedRanges_ActorScope(t *testing.T) {
	path := writeRelease(t, prevTurtle)
	cfg := vocabConfig(false, "myvoc")

	// octocat holds 1..100, which covers both concepts
	assert.NoError(t, CheckIDsInAllocatedRanges(cfg, path, "octocat"))

	// an actor without any allocation may not mint IDs at all
	err := CheckIDsInAllocatedRanges(cfg, path, "somebody-else")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 concept IRIs")
}

func TestCheckIDsInAllocatedRanges_SkippedWithoutIDLength(t *testing.T) {
	path := writeRelease(t, prevTurtle)

	assert.NoError(t, CheckIDsInAllocatedRanges(config.DefaultConfig(), path, ""))

	cfg := vocabConfig(false, "othervoc") // nothing configured for myvoc
	assert.NoError(t, CheckIDsInAllocatedRanges(cfg, path, ""))
}

func TestMergeOutbox_CopiesAndOverwrites(t *testing.T) {
	outbox := t.TempDir()
	vocabDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outbox, "myvoc.ttl"), []byte("new"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(vocabDir, "myvoc.ttl"), []byte("old"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(outbox, "added.ttl"), []byte("added"), 0644))

	require.NoError(t, MergeOutbox(outbox, vocabDir))

	got, err := os.ReadFile(filepath.Join(vocabDir, "myvoc.ttl"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
	got, err = os.ReadFile(filepath.Join(vocabDir, "added.ttl"))
	require.NoError(t, err)
	assert.Equal(t, "added", string(got))
}

func TestMergeOutbox_SkipsNonTurtle(t *testing.T) {
	outbox := t.TempDir()
	vocabDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outbox, "notes.md"), []byte("x"), 0644))

	require.NoError(t, MergeOutbox(outbox, vocabDir))

	_, err := os.Stat(filepath.Join(vocabDir, "notes.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestMergeOutbox_MissingDirectory(t *testing.T) {
	err := MergeOutbox(filepath.Join(t.TempDir(), "absent"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
