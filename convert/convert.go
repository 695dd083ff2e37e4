package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/LARAontologies/voc4cat-tool/model"
	"github.com/LARAontologies/voc4cat-tool/profile"
	"github.com/LARAontologies/voc4cat-tool/skos"
	"github.com/LARAontologies/voc4cat-tool/xlsx"
)

// OutputMode selects what ExcelToRDF produces.
type OutputMode string

const (
	// OutputGraph returns the in-memory graph only.
	OutputGraph OutputMode = "graph"
	// OutputString returns the serialized graph as text.
	OutputString OutputMode = "string"
	// OutputFile writes the serialized graph to disk.
	OutputFile OutputMode = "file"
)

// Options control one conversion run. Zero values mean defaults: sheet
// "vocabulary", profile "vocpub", file output next to the input.
type Options struct {
	Sheet      string
	Profile    string
	OutputMode OutputMode
	OutputFile string
	Format     skos.Format
	// Template is the workbook filled during RDF to xlsx conversion.
	Template string
	Logger   *slog.Logger
}

func (o *Options) withDefaults() Options {
	opts := *o
	if opts.Sheet == "" {
		opts.Sheet = xlsx.DefaultSheet
	}
	if opts.Profile == "" {
		opts.Profile = profile.DefaultToken
	}
	if opts.OutputMode == "" {
		opts.OutputMode = OutputFile
	}
	if opts.Format == "" {
		opts.Format = skos.FormatTurtle
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return opts
}

// Result is what a spreadsheet to RDF conversion produced.
type Result struct {
	Graph *skos.Graph
	// Text is set for string and file output modes.
	Text string
	// Path is the written file for file output mode.
	Path string
}

// ExcelToRDF converts one spreadsheet into a SKOS graph. The template
// version gate runs before any row is read; the first invalid cell aborts
// the run with no partial output.
func ExcelToRDF(path string, o Options) (*Result, error) {
	opts := o.withDefaults()
	log := opts.Logger.With("run_id", uuid.NewString(), "file", path)

	if !IsExcelFile(path) {
		return nil, configErrorf("file %s is not xlsx", path)
	}
	w, err := xlsx.Open(path)
	if err != nil {
		return nil, configErrorf("%v", err)
	}
	defer w.Close()

	if err := w.CheckTemplateVersion(); err != nil {
		return nil, &ConversionError{Kind: KindConfig, Reason: err.Error(), Err: err}
	}

	cs, err := ReadSchemeHeader(w, opts.Sheet)
	if err != nil {
		return nil, err
	}
	rows, err := w.Rows(opts.Sheet)
	if err != nil {
		return nil, configErrorf("%v", err)
	}
	concepts, collections, err := ExtractRows(rows)
	if err != nil {
		return nil, err
	}

	voc := &model.Vocabulary{ConceptScheme: cs, Concepts: concepts, Collections: collections}
	if err := voc.Validate(); err != nil {
		return nil, &ConversionError{Kind: KindField, Reason: err.Error(), Err: err}
	}
	log.Info("extracted vocabulary",
		"concepts", len(concepts), "collections", len(collections))

	g := skos.FromVocabulary(voc)
	res := &Result{Graph: g}
	if opts.OutputMode == OutputGraph {
		return res, nil
	}

	text, err := g.Serialize(opts.Format)
	if err != nil {
		return nil, &ConversionError{Kind: KindConfig, Reason: "serialize graph", Err: err}
	}
	res.Text = text
	if opts.OutputMode == OutputString {
		return res, nil
	}

	out := opts.OutputFile
	if out == "" {
		out = replaceEnding(path, ExcelEnding, formatEnding(opts.Format))
	}
	if err := g.WriteFile(out, opts.Format); err != nil {
		return nil, &ConversionError{Kind: KindConfig, Reason: "write output", Err: err}
	}
	res.Path = out
	log.Info("wrote RDF", "output", out)
	return res, nil
}

// RDFToExcel converts one RDF file into the spreadsheet layout. The file is
// parsed, gated through the requested profile, and fully extracted; a
// non-conformant graph fails with the validator report and no output file.
func RDFToExcel(path string, o Options) (string, error) {
	opts := o.withDefaults()
	log := opts.Logger.With("run_id", uuid.NewString(), "file", path)

	token := RDFFileToken(path)
	if token == "" {
		return "", configErrorf("file %s has no recognized RDF ending", path)
	}

	g, err := skos.ParseFile(path, token)
	if err != nil {
		var unparsable *skos.ErrUnparsableFormat
		if errors.As(err, &unparsable) {
			return "", &ConversionError{Kind: KindNotImplemented, Reason: unparsable.Error(), Err: err}
		}
		return "", &ConversionError{Kind: KindConfig, Reason: "parse RDF", Err: err}
	}

	result, err := profile.Validate(g, opts.Profile)
	if err != nil {
		return "", &ConversionError{Kind: KindConfig, Reason: err.Error(), Err: err}
	}
	if !result.Conforms {
		return "", &ConversionError{
			Kind:   KindConformance,
			Reason: fmt.Sprintf("RDF in %s does not conform to profile %q", path, opts.Profile),
			Report: result.Report(),
		}
	}

	voc, err := skos.ExtractVocabulary(g)
	if err != nil {
		return "", &ConversionError{Kind: KindConfig, Reason: "extract vocabulary", Err: err}
	}
	log.Info("extracted vocabulary",
		"concepts", len(voc.Concepts), "collections", len(voc.Collections))

	out := opts.OutputFile
	if out == "" {
		out = replaceEnding(path, endingFor(path), ExcelEnding)
	}
	if err := xlsx.WriteVocabulary(voc, out, opts.Template, opts.Sheet); err != nil {
		return "", &ConversionError{Kind: KindConfig, Reason: "write workbook", Err: err}
	}
	log.Info("wrote workbook", "output", out)
	return out, nil
}

// ConvertFile dispatches on the file ending: xlsx goes to RDF, RDF goes to
// xlsx. Unknown endings fail.
func ConvertFile(path string, opts Options) error {
	switch {
	case IsExcelFile(path):
		_, err := ExcelToRDF(path, opts)
		return err
	case RDFFileToken(path) != "":
		_, err := RDFToExcel(path, opts)
		return err
	default:
		return configErrorf("file %s has no convertible ending", path)
	}
}

// ConvertDirectory converts every convertible file in dir. A basename
// present in more than one format is ambiguous and fails the whole batch
// up front.
func ConvertDirectory(dir string, o Options) error {
	opts := o.withDefaults()
	dupes, err := MultiFormatBasenames(dir)
	if err != nil {
		return configErrorf("scan directory %s: %v", dir, err)
	}
	if len(dupes) > 0 {
		return configErrorf("directory %s holds files in more than one format: %s",
			dir, strings.Join(dupes, ", "))
	}
	files, err := ConvertibleFiles(dir)
	if err != nil {
		return configErrorf("scan directory %s: %v", dir, err)
	}
	if len(files) == 0 {
		return configErrorf("directory %s holds no convertible files", dir)
	}
	for _, f := range files {
		// explicit --outputfile cannot apply to a whole batch
		batchOpts := opts
		batchOpts.OutputFile = ""
		if err := ConvertFile(f, batchOpts); err != nil {
			return err
		}
	}
	return nil
}

func formatEnding(f skos.Format) string {
	switch f {
	case skos.FormatNTriples:
		return ".nt"
	case skos.FormatJSONLD:
		return ".json-ld"
	default:
		return ".ttl"
	}
}

func endingFor(path string) string {
	lower := strings.ToLower(path)
	for _, e := range rdfEndings {
		if strings.HasSuffix(lower, e.Ending) {
			return e.Ending
		}
	}
	return filepath.Ext(path)
}

func replaceEnding(path, oldEnding, newEnding string) string {
	if strings.HasSuffix(strings.ToLower(path), oldEnding) {
		return path[:len(path)-len(oldEnding)] + newEnding
	}
	return path + newEnding
}
