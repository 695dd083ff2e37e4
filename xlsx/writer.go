package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/LARAontologies/voc4cat-tool/model"
)

// WriteVocabulary writes a vocabulary into the template layout at outPath.
// With templatePath set, the template workbook is filled and saved under the
// new name, keeping its styling and extra sheets. Without one, a minimal
// workbook with just the vocabulary sheet is created.
func WriteVocabulary(v *model.Vocabulary, outPath, templatePath, sheet string) error {
	if sheet == "" {
		sheet = DefaultSheet
	}

	var f *excelize.File
	if templatePath != "" {
		tpl, err := Open(templatePath)
		if err != nil {
			return fmt.Errorf("open template: %w", err)
		}
		defer tpl.Close()
		if err := tpl.CheckTemplateVersion(); err != nil {
			return err
		}
		f = tpl.file
	} else {
		f = excelize.NewFile()
		defer f.Close()
		f.SetSheetName("Sheet1", sheet)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %q: %w", sheet, err)
		}
	}

	cs := v.ConceptScheme
	headerValues := []string{cs.URI, cs.Title, cs.Description, cs.Created,
		cs.Modified, cs.Creator, cs.Publisher, cs.Version, cs.Provenance,
		cs.Custodian, cs.PID}
	for i, cell := range SchemeCells {
		if err := f.SetCellStr(sheet, "A"+cell.Ref[1:], cell.Label); err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell.Ref, headerValues[i]); err != nil {
			return err
		}
	}

	row := len(SchemeCells) + 2 // blank row below the header

	if err := writeRow(f, sheet, row, ConceptColumns); err != nil {
		return err
	}
	row++
	for _, c := range v.Concepts {
		cells := []string{c.URI, c.PrefLabel, strings.Join(c.AltLabels, ", "),
			c.Definition, strings.Join(c.Children, ", "),
			strings.Join(c.OtherIDs, ", "), c.HomeVocabURI, c.Provenance}
		if err := writeRow(f, sheet, row, cells); err != nil {
			return err
		}
		row++
	}

	row++ // blank row between sections
	if err := writeRow(f, sheet, row, CollectionColumns); err != nil {
		return err
	}
	row++
	for _, c := range v.Collections {
		cells := []string{c.URI, c.PrefLabel, c.Definition,
			strings.Join(c.Members, ", "), c.Provenance}
		if err := writeRow(f, sheet, row, cells); err != nil {
			return err
		}
		row++
	}

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("save workbook %s: %w", outPath, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []string) error {
	for i, v := range cells {
		ref, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, ref, v); err != nil {
			return err
		}
	}
	return nil
}
