package cmd

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cmmoran/copytogen/pkg/action/generate"
	"github.com/cmmoran/copytogen/pkg/generator"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	var options = generator.NewOptions()

	// generateCmd represents the copytogen generate command
	var generateCmd = &cobra.Command{
		Use:   "generate [descriptor files or directories...]",
		Short: "generate copyTo methods",
		Long:  "Generate a Java copyTo method, and optionally a Go mirror, for every class in the given descriptors",
		PreRunE: func(c *cobra.Command, _ []string) error {
			return bindGeneratorFlags(c.Flags())
		},
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := loadOptions(options, args)
			if err != nil {
				return err
			}
			files, err := generate.Generate(opts)
			if err != nil {
				return err
			}
			for _, f := range files {
				_, _ = fmt.Fprintln(c.OutOrStdout(), f)
			}
			return nil
		},
	}
	addGeneratorFlags(generateCmd.Flags(), options)

	return generateCmd
}

// generatorFlags maps flag names to their key below "generator" in the
// viper configuration.
var generatorFlags = map[string]string{
	"input":            "inputs",
	"output-directory": "out_dir",
	"indent":           "indent",
	"source-name":      "source_name",
	"target-name":      "target_name",
	"map-key-mode":     "map_key_mode",
	"init-destination": "init_destination",
	"exclude-fields":   "exclude_fields",
	"go":               "emit_go",
	"go-package":       "go_package",
}

func addGeneratorFlags(fs *pflag.FlagSet, options *generator.Options) {
	fs.StringSliceVarP(&options.Inputs, "input", "i", options.Inputs, "descriptor files or directories to load")
	fs.StringVarP(&options.OutDir, "output-directory", "o", options.OutDir, "directory to write generated methods")
	fs.StringVar(&options.Indent, "indent", options.Indent, "indentation of nested statements")
	fs.StringVar(&options.SourceName, "source-name", options.SourceName, "expression holding the copied instance")
	fs.StringVar(&options.TargetName, "target-name", options.TargetName, "name of the copy target parameter")
	fs.StringVarP(&options.MapKeyMode, "map-key-mode", "m", options.MapKeyMode, "map key copy mode (compat, corrected)")
	fs.BoolVar(&options.InitDestination, "init-destination", options.InitDestination, "instantiate null destination lists and maps before copying")
	fs.StringSliceVarP(&options.ExcludeFields, "exclude-fields", "x", options.ExcludeFields, "field names never copied (case-insensitive)")
	fs.BoolVarP(&options.EmitGo, "go", "g", options.EmitGo, "also write a Go mirror of every class")
	fs.StringVar(&options.GoPackage, "go-package", options.GoPackage, "package name of the Go mirror files")
}

// bindGeneratorFlags binds the flags of the running command, so a flag set
// on the command line overrides the configuration file.
func bindGeneratorFlags(fs *pflag.FlagSet) error {
	for name, key := range generatorFlags {
		if err := viper.BindPFlag("generator."+key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// loadOptions unmarshals the "generator" configuration over defaults and
// appends positional args to the inputs.
func loadOptions(defaults *generator.Options, args []string) (*generator.Options, error) {
	o := *defaults
	o.Inputs = slices.Clone(defaults.Inputs)
	o.ExcludeFields = slices.Clone(defaults.ExcludeFields)
	cfg := struct {
		Generator *generator.Options `mapstructure:"generator"`
	}{
		Generator: &o,
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	opts := cfg.Generator
	opts.Inputs = append(opts.Inputs, args...)
	if err := opts.Normalize(); err != nil {
		return nil, err
	}
	slog.Default().With("options", opts).Debug("generator options")
	return opts, nil
}
