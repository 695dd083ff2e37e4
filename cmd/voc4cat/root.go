package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LARAontologies/voc4cat-tool/config"
	"github.com/LARAontologies/voc4cat-tool/convert"
	"github.com/LARAontologies/voc4cat-tool/profile"
	"github.com/LARAontologies/voc4cat-tool/skos"
)

// rootOptions carry the flags shared by the conversion commands.
type rootOptions struct {
	configPath   string
	logLevel     string
	profileToken string
	outputType   string
	outputFile   string
	sheet        string
	template     string
	listProfiles bool
}

func rootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "voc4cat [file-or-directory]",
		Short: "Convert vocabularies between xlsx and SKOS RDF",
		Long: `voc4cat converts a controlled vocabulary between a fixed-layout xlsx
spreadsheet and SKOS RDF.

A spreadsheet argument is converted to RDF; an RDF file is validated
against a profile and converted back to a spreadsheet. A directory
argument converts every vocabulary file it contains.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.listProfiles {
				fmt.Println("Profiles, the keyword for the -p option and their IRI:")
				for _, token := range profile.Tokens() {
					p, _ := profile.Lookup(token)
					fmt.Printf("  %s  %s\n", token, p.IRI)
				}
				return nil
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			return runConvert(args[0], opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "idranges.yaml", "Config file path")
	pf.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&opts.sheet, "sheet", "", "Worksheet holding the vocabulary (default: vocabulary)")

	cmd.Flags().BoolVar(&opts.listProfiles, "listprofiles", false, "List supported validation profiles and exit")
	cmd.Flags().StringVarP(&opts.profileToken, "profile", "p", profile.DefaultToken, "Validation profile for RDF input")
	cmd.Flags().StringVar(&opts.outputType, "outputtype", "file", "Where conversion output goes (file, string)")
	cmd.Flags().StringVarP(&opts.outputFile, "outputfile", "o", "", "Output file path (default: input with swapped ending)")
	cmd.Flags().StringVar(&opts.template, "template", "", "Template workbook filled during RDF to xlsx conversion")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})
	cmd.AddCommand(transformCmd(opts))
	cmd.AddCommand(checkCmd(opts))
	cmd.AddCommand(watchCmd(opts))
	cmd.AddCommand(mergeCmd())

	return cmd
}

func setupLogging(logLevel string) error {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", logLevel)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func runConvert(path string, opts *rootOptions) error {
	convOpts, err := convertOptions(opts)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return convert.ConvertDirectory(path, convOpts)
	}

	if opts.outputType == "string" && convert.IsExcelFile(path) {
		res, err := convert.ExcelToRDF(path, convOpts)
		if err != nil {
			return err
		}
		fmt.Print(res.Text)
		return nil
	}
	return convert.ConvertFile(path, convOpts)
}

func convertOptions(opts *rootOptions) (convert.Options, error) {
	var mode convert.OutputMode
	switch opts.outputType {
	case "", "file":
		mode = convert.OutputFile
	case "string":
		mode = convert.OutputString
	default:
		return convert.Options{}, fmt.Errorf("unknown output type %q (use file or string)", opts.outputType)
	}
	return convert.Options{
		Sheet:      opts.sheet,
		Profile:    opts.profileToken,
		OutputMode: mode,
		OutputFile: opts.outputFile,
		Format:     skos.FormatTurtle,
		Template:   opts.template,
	}, nil
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	// an explicit config file next to the invocation wins over discovery
	if opts.configPath != "" {
		if _, err := os.Stat(opts.configPath); err == nil {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return nil, fmt.Errorf("load config: %w", err)
			}
			return cfg, nil
		}
	}
	cfg, err := config.NewLoader(nil).Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
