package convert

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// rdfEndings maps recognized RDF file endings to serialization tokens.
// Endings are matched case-insensitively against the end of the file name,
// longest first, so ".json-ld" wins over ".json".
var rdfEndings = []struct {
	Ending string
	Token  string
}{
	{".json-ld", "json-ld"},
	{".json", "json-ld"},
	{".ttl", "ttl"},
	{".rdf", "xml"},
	{".xml", "xml"},
	{".nt", "nt"},
	{".n3", "n3"},
}

// ExcelEnding is the only spreadsheet ending the tool accepts.
const ExcelEnding = ".xlsx"

// RDFFileToken returns the serialization token for an RDF file name, or ""
// when the ending is not a known RDF ending.
func RDFFileToken(name string) string {
	lower := strings.ToLower(name)
	for _, e := range rdfEndings {
		if strings.HasSuffix(lower, e.Ending) {
			return e.Token
		}
	}
	return ""
}

// IsExcelFile reports whether name has the spreadsheet ending.
func IsExcelFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ExcelEnding)
}

// knownEndings lists every ending the directory batch mode converts.
func knownEndings() []string {
	endings := []string{ExcelEnding}
	for _, e := range rdfEndings {
		endings = append(endings, e.Ending)
	}
	return endings
}

// ConvertibleFiles globs dir for every file in a format the tool can
// convert, sorted by path. The glob is non-recursive; batch mode treats a
// directory as one flat inbox.
func ConvertibleFiles(dir string) ([]string, error) {
	fsys := os.DirFS(dir)
	var files []string
	for _, ending := range knownEndings() {
		matches, err := doublestar.Glob(fsys, "*"+ending)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			files = append(files, filepath.Join(dir, m))
		}
	}
	sort.Strings(files)
	return files, nil
}

// MultiFormatBasenames returns the basenames present in dir in more than one
// convertible format. Such files are rejected in batch mode since the
// conversion target would be ambiguous.
func MultiFormatBasenames(dir string) ([]string, error) {
	files, err := ConvertibleFiles(dir)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, f := range files {
		base := filepath.Base(f)
		for _, ending := range knownEndings() {
			if strings.HasSuffix(strings.ToLower(base), ending) {
				counts[base[:len(base)-len(ending)]]++
				break
			}
		}
	}
	var dupes []string
	for base, n := range counts {
		if n > 1 {
			dupes = append(dupes, base)
		}
	}
	sort.Strings(dupes)
	return dupes, nil
}
