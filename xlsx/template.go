package xlsx

import (
	"fmt"
	"sort"
	"strings"
)

// Template version lives on the Introduction sheet. Workbooks made from
// other template versions have different cell layouts, so conversion refuses
// anything it does not know.
const (
	versionSheet = "Introduction"
	versionCell  = "J11"
)

// SupportedTemplateVersions is the set of template versions the extractor's
// cell layout matches.
var SupportedTemplateVersions = map[string]bool{
	"0.4.3": true,
}

// ErrTemplateVersion reports an unusable template version.
type ErrTemplateVersion struct {
	// Version is "" when it could not be read at all.
	Version string
	Path    string
}

// Error implements the error interface.
func (e *ErrTemplateVersion) Error() string {
	if e.Version == "" {
		return fmt.Sprintf("template version of %s cannot be determined", e.Path)
	}
	supported := make([]string, 0, len(SupportedTemplateVersions))
	for v := range SupportedTemplateVersions {
		supported = append(supported, v)
	}
	sort.Strings(supported)
	return fmt.Sprintf("template version %s of %s is not supported; supported: %s",
		e.Version, e.Path, strings.Join(supported, ", "))
}

// CheckTemplateVersion reads the template version and fails unless it is a
// supported one. The workbook is not modified.
func (w *Workbook) CheckTemplateVersion() error {
	if !w.HasSheet(versionSheet) {
		return &ErrTemplateVersion{Path: w.path}
	}
	v, err := w.Cell(versionSheet, versionCell)
	if err != nil || v == "" {
		return &ErrTemplateVersion{Path: w.path}
	}
	if !SupportedTemplateVersions[v] {
		return &ErrTemplateVersion{Version: v, Path: w.path}
	}
	return nil
}
