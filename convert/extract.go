// Package convert holds the conversion pipeline: spreadsheet rows to domain
// entities, entities to RDF, and the reverse direction.
package convert

import (
	"errors"
	"strings"

	"github.com/LARAontologies/voc4cat-tool/model"
	"github.com/LARAontologies/voc4cat-tool/xlsx"
)

// sectionState tracks which part of the vocabulary sheet a row belongs to.
type sectionState int

const (
	// scanning is everything above the first sentinel, including the
	// concept scheme header block.
	scanning sectionState = iota
	inConcepts
	inCollections
)

// nextState returns the state after seeing firstCell in column A. Only the
// exact sentinel texts switch sections; any other content stays put.
func nextState(state sectionState, firstCell string) sectionState {
	switch firstCell {
	case xlsx.SentinelConcept:
		return inConcepts
	case xlsx.SentinelCollection:
		return inCollections
	}
	return state
}

// columnField binds one worksheet column to one entity field. Rows of each
// section are read by iterating their table in order.
type columnField struct {
	col   int
	name  string
	split bool
	set   func(target any, values []string)
}

func setText(assign func(target any, v string)) func(any, []string) {
	return func(target any, values []string) {
		if len(values) > 0 {
			assign(target, values[0])
		}
	}
}

var conceptColumns = []columnField{
	{col: 0, name: "Concept URI", set: setText(func(t any, v string) { t.(*model.Concept).URI = v })},
	{col: 1, name: "Pref Label", set: setText(func(t any, v string) { t.(*model.Concept).PrefLabel = v })},
	{col: 2, name: "Alternate Labels", split: true, set: func(t any, vs []string) { t.(*model.Concept).AltLabels = vs }},
	{col: 3, name: "Definition", set: setText(func(t any, v string) { t.(*model.Concept).Definition = v })},
	{col: 4, name: "Children URIs", split: true, set: func(t any, vs []string) { t.(*model.Concept).Children = vs }},
	{col: 5, name: "Other IDs", split: true, set: func(t any, vs []string) { t.(*model.Concept).OtherIDs = vs }},
	{col: 6, name: "Home Vocab URI", set: setText(func(t any, v string) { t.(*model.Concept).HomeVocabURI = v })},
	{col: 7, name: "Provenance", set: setText(func(t any, v string) { t.(*model.Concept).Provenance = v })},
}

var collectionColumns = []columnField{
	{col: 0, name: "Collection URI", set: setText(func(t any, v string) { t.(*model.Collection).URI = v })},
	{col: 1, name: "Pref Label", set: setText(func(t any, v string) { t.(*model.Collection).PrefLabel = v })},
	{col: 2, name: "Definition", set: setText(func(t any, v string) { t.(*model.Collection).Definition = v })},
	{col: 3, name: "Members URIs", split: true, set: func(t any, vs []string) { t.(*model.Collection).Members = vs }},
	{col: 4, name: "Provenance", set: setText(func(t any, v string) { t.(*model.Collection).Provenance = v })},
}

func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func applyColumns(target any, row []string, table []columnField) {
	for _, cf := range table {
		text := cellAt(row, cf.col)
		if cf.split {
			cf.set(target, SplitAndTidy(text))
		} else if text != "" {
			cf.set(target, []string{text})
		}
	}
}

// ExtractRows walks the sheet once and returns concepts and collections in
// worksheet order. Rows whose first column is blank are skipped wherever
// they appear; sections end only at the next sentinel or the end of the
// sheet. The first invalid row aborts the extraction.
func ExtractRows(rows [][]string) ([]model.Concept, []model.Collection, error) {
	var concepts []model.Concept
	var collections []model.Collection

	state := scanning
	for i, row := range rows {
		first := cellAt(row, 0)
		if next := nextState(state, first); next != state {
			state = next
			continue // sentinel row is a heading, not data
		}
		if first == "" {
			continue
		}

		rowNum := i + 1 // worksheet rows are 1-based
		switch state {
		case inConcepts:
			var c model.Concept
			applyColumns(&c, row, conceptColumns)
			if ferr := c.Validate(); ferr != nil {
				return nil, nil, fieldRowError(ferr, rowNum)
			}
			concepts = append(concepts, c)
		case inCollections:
			var c model.Collection
			applyColumns(&c, row, collectionColumns)
			if ferr := c.Validate(); ferr != nil {
				return nil, nil, fieldRowError(ferr, rowNum)
			}
			collections = append(collections, c)
		}
	}
	return concepts, collections, nil
}

func fieldRowError(err error, row int) *ConversionError {
	cerr := &ConversionError{Kind: KindField, Row: row, Err: err}
	var ferr *model.FieldError
	if errors.As(err, &ferr) {
		cerr.Section = ferr.Entity
		cerr.Field = ferr.Field
		cerr.Reason = ferr.Reason
	}
	return cerr
}

// ReadSchemeHeader reads the concept scheme block from its fixed cells and
// validates it. The workbook is not modified.
func ReadSchemeHeader(w *xlsx.Workbook, sheet string) (model.ConceptScheme, error) {
	var values [11]string
	for i, cell := range xlsx.SchemeCells {
		v, err := w.Cell(sheet, cell.Ref)
		if err != nil {
			return model.ConceptScheme{}, configErrorf("read sheet %s: %v", sheet, err)
		}
		values[i] = v
	}
	cs := model.ConceptScheme{
		URI:         values[0],
		Title:       values[1],
		Description: values[2],
		Created:     values[3],
		Modified:    values[4],
		Creator:     values[5],
		Publisher:   values[6],
		Version:     values[7],
		Provenance:  values[8],
		Custodian:   values[9],
		PID:         values[10],
	}
	if err := cs.Validate(); err != nil {
		return model.ConceptScheme{}, fieldRowError(err, 0)
	}
	return cs, nil
}
