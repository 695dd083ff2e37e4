// Package transform preprocesses vocabulary spreadsheets in place: minting
// IRIs from preferred labels, resolving label references to IRIs, duplicate
// detection, and converting the hierarchy between indented labels and
// children-URI lists.
package transform

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"

	"github.com/LARAontologies/voc4cat-tool/convert"
	"github.com/LARAontologies/voc4cat-tool/hierarchy"
	"github.com/LARAontologies/voc4cat-tool/xlsx"
)

// section locates one sentinel section in the sheet: the 0-based row index
// of its first data row and the index one past its last row.
type section struct {
	start, end int
}

// findSection returns the rows between sentinel and the next sentinel (or
// the sheet end). A missing sentinel yields an empty section.
func findSection(rows [][]string, sentinel string) section {
	start := -1
	for i, row := range rows {
		first := firstCell(row)
		if start < 0 {
			if first == sentinel {
				start = i + 1
			}
			continue
		}
		if first == xlsx.SentinelConcept || first == xlsx.SentinelCollection {
			return section{start, i}
		}
	}
	if start < 0 {
		return section{}
	}
	return section{start, len(rows)}
}

func firstCell(row []string) string {
	if len(row) == 0 {
		return ""
	}
	return strings.TrimSpace(row[0])
}

func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func cellRef(col, row int) string {
	// sections never reach column Z
	return fmt.Sprintf("%c%d", 'A'+col, row+1)
}

// AddIRIs mints an IRI for every concept and collection row that has a
// preferred label but no IRI yet. IRIs are slugs of the label under the
// concept scheme URI; collections get a "-coll" suffix to avoid clashing
// with a concept of the same name.
func AddIRIs(inPath, outPath, sheet string) error {
	w, rows, err := open(inPath, &sheet)
	if err != nil {
		return err
	}
	defer w.Close()

	base, err := w.Cell(sheet, xlsx.SchemeCells[0].Ref)
	if err != nil {
		return err
	}
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}

	fill := func(sec section, suffix string) error {
		for i := sec.start; i < sec.end; i++ {
			label := cellAt(rows[i], 1)
			if cellAt(rows[i], 0) != "" || label == "" {
				continue
			}
			iri := base + slug.Make(label) + suffix
			if err := w.SetCell(sheet, cellRef(0, i), iri); err != nil {
				return err
			}
		}
		return nil
	}
	if err := fill(findSection(rows, xlsx.SentinelConcept), ""); err != nil {
		return err
	}
	if err := fill(findSection(rows, xlsx.SentinelCollection), "-coll"); err != nil {
		return err
	}
	return w.SaveAs(outPath)
}

// AddRelated resolves preferred labels in the children and members columns
// to IRIs. Entries already shaped like IRIs are kept; entries matching a
// preferred label (compared slugified) are replaced by that row's IRI.
func AddRelated(inPath, outPath, sheet string) error {
	w, rows, err := open(inPath, &sheet)
	if err != nil {
		return err
	}
	defer w.Close()

	conceptSec := findSection(rows, xlsx.SentinelConcept)
	collectionSec := findSection(rows, xlsx.SentinelCollection)

	byLabel := map[string]string{}
	for i := conceptSec.start; i < conceptSec.end; i++ {
		if iri, label := cellAt(rows[i], 0), cellAt(rows[i], 1); iri != "" && label != "" {
			byLabel[slug.Make(label)] = iri
		}
	}

	resolve := func(sec section, col int) error {
		for i := sec.start; i < sec.end; i++ {
			if cellAt(rows[i], 0) == "" {
				continue
			}
			entries := convert.SplitAndTidy(cellAt(rows[i], col))
			if len(entries) == 0 {
				continue
			}
			changed := false
			for j, e := range entries {
				if iri, ok := byLabel[slug.Make(e)]; ok && !strings.Contains(e, "://") {
					entries[j] = iri
					changed = true
				}
			}
			if !changed {
				continue
			}
			if err := w.SetCell(sheet, cellRef(col, i), strings.Join(entries, ", ")); err != nil {
				return err
			}
		}
		return nil
	}
	if err := resolve(conceptSec, 4); err != nil { // Children URIs
		return err
	}
	if err := resolve(collectionSec, 3); err != nil { // Members URIs
		return err
	}
	return w.SaveAs(outPath)
}

// DuplicateIRI reports one reuse of a concept IRI.
type DuplicateIRI struct {
	IRI       string
	Row       int
	FirstSeen int
}

// CheckDuplicates scans the concept section for IRIs used on more than one
// row, reporting both rows (1-based) for each reuse.
func CheckDuplicates(inPath, sheet string) ([]DuplicateIRI, error) {
	w, rows, err := open(inPath, &sheet)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	sec := findSection(rows, xlsx.SentinelConcept)
	seen := map[string]int{}
	var dupes []DuplicateIRI
	for i := sec.start; i < sec.end; i++ {
		iri := cellAt(rows[i], 0)
		if iri == "" {
			continue
		}
		if first, ok := seen[iri]; ok {
			dupes = append(dupes, DuplicateIRI{IRI: iri, Row: i + 1, FirstSeen: first + 1})
		} else {
			seen[iri] = i
		}
	}
	return dupes, nil
}

// IndentToChildren converts an indented concept hierarchy to children-URI
// form. Preferred labels carry the indentation; each level is one sep. The
// children column is rewritten and the indentation stripped off the labels.
func IndentToChildren(inPath, outPath, sheet, sep string) error {
	if sep == "" {
		return fmt.Errorf("indent separator must not be empty")
	}
	w, rows, err := open(inPath, &sheet)
	if err != nil {
		return err
	}
	defer w.Close()

	sec := findSection(rows, xlsx.SentinelConcept)
	var nodes []*hierarchy.Node
	for i := sec.start; i < sec.end; i++ {
		iri := cellAt(rows[i], 0)
		rawLabel := ""
		if len(rows[i]) > 1 {
			rawLabel = rows[i][1]
		}
		if iri == "" || strings.TrimSpace(rawLabel) == "" {
			continue
		}
		node := hierarchy.NewNode(rawLabel, sep)
		label := node.Text
		node.Text = iri
		nodes = append(nodes, node)
		if err := w.SetCell(sheet, cellRef(1, i), label); err != nil {
			return err
		}
	}

	root := &hierarchy.Node{Text: "root"}
	if err := root.AddChildren(nodes); err != nil {
		return err
	}
	children := root.AsNarrowerMap()

	for i := sec.start; i < sec.end; i++ {
		iri := cellAt(rows[i], 0)
		if iri == "" || !children.Has(iri) {
			continue
		}
		value := strings.Join(children.Get(iri), ", ")
		if err := w.SetCell(sheet, cellRef(4, i), value); err != nil {
			return err
		}
	}
	return w.SaveAs(outPath)
}

// ChildrenToIndent converts a children-URI hierarchy to indented preferred
// labels. Concept rows are rewritten in hierarchical order; a child IRI
// that no row defines is an error.
func ChildrenToIndent(inPath, outPath, sheet, sep string) error {
	if sep == "" {
		return fmt.Errorf("indent separator must not be empty")
	}
	w, rows, err := open(inPath, &sheet)
	if err != nil {
		return err
	}
	defer w.Close()

	sec := findSection(rows, xlsx.SentinelConcept)
	children := hierarchy.NewNarrowerMap()
	byIRI := map[string][]string{}
	for i := sec.start; i < sec.end; i++ {
		iri := cellAt(rows[i], 0)
		if iri == "" {
			continue
		}
		if _, ok := byIRI[iri]; !ok {
			byIRI[iri] = rows[i]
			children.Set(iri, convert.SplitAndTidy(cellAt(rows[i], 4)))
		}
	}

	tree, err := hierarchy.BuildFromNarrower(children)
	if err != nil {
		return err
	}
	levels := tree.AsLevelList()
	if tree.Text == "root" {
		levels = levels[1:]
	}

	row := sec.start
	for _, e := range levels {
		src := byIRI[e.Text]
		for col := 0; col < len(xlsx.ConceptColumns); col++ {
			if err := w.SetCell(sheet, cellRef(col, row), cellAt(src, col)); err != nil {
				return err
			}
		}
		label := strings.Repeat(sep, e.Level) + cellAt(src, 1)
		if err := w.SetCell(sheet, cellRef(1, row), label); err != nil {
			return err
		}
		row++
	}
	return w.SaveAs(outPath)
}

func open(path string, sheet *string) (*xlsx.Workbook, [][]string, error) {
	if *sheet == "" {
		*sheet = xlsx.DefaultSheet
	}
	w, err := xlsx.Open(path)
	if err != nil {
		return nil, nil, err
	}
	rows, err := w.Rows(*sheet)
	if err != nil {
		w.Close()
		return nil, nil, err
	}
	return w, rows, nil
}
