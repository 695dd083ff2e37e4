// Package checks holds workflow checks for vocabulary repositories run by
// the publication pipeline: inbox constraints, vocabulary naming and ID
// ranges against the configuration, and detection of removed IRIs between
// releases.
package checks

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	rdf2go "github.com/deiu/rdf2go"

	"github.com/LARAontologies/voc4cat-tool/config"
	"github.com/LARAontologies/voc4cat-tool/skos"
)

// ValidateConfigHasIDRange checks that the named vocabulary has at least
// one allocated ID range. With a default (empty) configuration no check is
// possible.
func ValidateConfigHasIDRange(cfg *config.Config, vocab string) error {
	if cfg.Default {
		return nil
	}
	v, ok := cfg.Vocabs[strings.ToLower(vocab)]
	if !ok || len(v.IDRange) == 0 {
		return fmt.Errorf("config for vocabulary %q has no id_range section", vocab)
	}
	return nil
}

// CheckInboxFileCount fails when the single-vocabulary option is active but
// the inbox holds more than one spreadsheet.
func CheckInboxFileCount(cfg *config.Config, inboxDir string) error {
	files, err := doublestar.Glob(os.DirFS(inboxDir), "*.xlsx")
	if err != nil {
		return fmt.Errorf("scan inbox %s: %w", inboxDir, err)
	}
	slog.Debug("scanned inbox", "dir", inboxDir, "xlsx_files", len(files))
	if cfg.SingleVocab && len(files) > 1 {
		return fmt.Errorf("the single vocabulary option is active but %s contains %d xlsx files",
			inboxDir, len(files))
	}
	return nil
}

// ValidateVocabularyNames checks the file name stems in the vocabulary and
// inbox directories against the configured vocabulary names. Without a
// configured vocabulary list the check is skipped.
func ValidateVocabularyNames(cfg *config.Config, vocabDir, inboxDir string) error {
	if cfg.Default || len(cfg.Vocabs) == 0 {
		slog.Warn("skipping vocabulary name validation, no idrange configuration present")
		return nil
	}

	vocabNames, err := stems(vocabDir, "*.ttl")
	if err != nil {
		return err
	}
	inboxNames, err := stems(inboxDir, "*.xlsx")
	if err != nil {
		return err
	}

	if cfg.SingleVocab && len(vocabNames) == 1 && len(inboxNames) == 1 &&
		vocabNames[0] != inboxNames[0] {
		return fmt.Errorf("the file in inbox %q must match the vocabulary name %q",
			inboxNames[0], vocabNames[0])
	}

	var missing []string
	for _, name := range append(append([]string{}, vocabNames...), inboxNames...) {
		if _, ok := cfg.Vocabs[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing vocabulary id_range config for %q", strings.Join(missing, ", "))
	}
	return nil
}

func stems(dir, pattern string) ([]string, error) {
	files, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	seen := map[string]bool{}
	var out []string
	for _, f := range files {
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(f), filepath.Ext(f)))
		if !seen[stem] {
			seen[stem] = true
			out = append(out, stem)
		}
	}
	sort.Strings(out)
	return out, nil
}

// CheckRemovedIRIs compares a previous and a new release of a vocabulary
// and reports every concept or collection IRI present before but gone now.
// Removals fail hard unless the vocabulary's configuration sets
// allow_delete; then they are only logged.
func CheckRemovedIRIs(cfg *config.Config, prevPath, newPath string) error {
	prev, err := skos.ParseFile(prevPath, "ttl")
	if err != nil {
		return err
	}
	next, err := skos.ParseFile(newPath, "ttl")
	if err != nil {
		return err
	}

	removed := removedSubjects(prev, next, skos.ClassConcept)
	removedColl := removedSubjects(prev, next, skos.ClassCollection)

	stem := strings.ToLower(strings.TrimSuffix(filepath.Base(prevPath), filepath.Ext(prevPath)))
	allowDelete := false
	if v, ok := cfg.Vocabs[stem]; ok {
		allowDelete = v.Checks.AllowDelete
	}

	for _, iri := range removed {
		logRemoval(allowDelete, "removal of a Concept detected", iri)
	}
	for _, iri := range removedColl {
		logRemoval(allowDelete, "removal of a Collection detected", iri)
	}

	total := len(removed) + len(removedColl)
	if total > 0 && !allowDelete {
		return fmt.Errorf("forbidden removal of %d concepts/collections detected, see log for IRIs", total)
	}
	return nil
}

// CheckIDsInAllocatedRanges validates the numeric identifier of every
// concept IRI in a released vocabulary against the ID ranges allocated in
// the configuration. With a non-empty actor only the ranges allocated to
// that contributor (GitHub login, ORCID, or ROR ID) count as valid. The
// check is skipped with a default configuration or when the vocabulary has
// no configured ID length.
func CheckIDsInAllocatedRanges(cfg *config.Config, vocabPath, actor string) error {
	if cfg.Default {
		return nil
	}
	stem := strings.ToLower(strings.TrimSuffix(filepath.Base(vocabPath), filepath.Ext(vocabPath)))
	pattern := cfg.IDPattern(stem)
	if pattern == nil {
		slog.Warn("skipping ID range check, vocabulary has no configured id_length", "vocab", stem)
		return nil
	}

	var ranges [][2]int
	if actor != "" {
		ranges = cfg.RangesByActor()[actor]
	} else {
		for _, r := range cfg.Vocabs[stem].IDRange {
			ranges = append(ranges, [2]int{r.FirstID, r.LastID})
		}
	}

	g, err := skos.ParseFile(vocabPath, "ttl")
	if err != nil {
		return err
	}

	violations := 0
	for _, iri := range skos.SubjectsOfType(g, skos.ClassConcept) {
		m := pattern.FindStringSubmatch(iri)
		if m == nil {
			slog.Error("concept IRI does not end in an identifier of the configured length", "iri", iri)
			violations++
			continue
		}
		id, _ := strconv.Atoi(m[1])
		if !idInRanges(id, ranges) {
			slog.Error("concept ID is outside the allocated ranges", "iri", iri, "id", id)
			violations++
		}
	}
	if violations > 0 {
		return fmt.Errorf("%d concept IRIs violate the allocated ID ranges, see log for IRIs", violations)
	}
	return nil
}

func idInRanges(id int, ranges [][2]int) bool {
	for _, r := range ranges {
		if id >= r[0] && id <= r[1] {
			return true
		}
	}
	return false
}

func logRemoval(allowed bool, msg, iri string) {
	if allowed {
		slog.Warn(msg, "iri", iri)
	} else {
		slog.Error(msg, "iri", iri)
	}
}

// removedSubjects returns the subjects typed class in prev but not in next,
// sorted.
func removedSubjects(prev, next *rdf2go.Graph, class string) []string {
	have := map[string]bool{}
	for _, uri := range skos.SubjectsOfType(next, class) {
		have[uri] = true
	}
	var out []string
	for _, uri := range skos.SubjectsOfType(prev, class) {
		if !have[uri] {
			out = append(out, uri)
		}
	}
	return out
}
