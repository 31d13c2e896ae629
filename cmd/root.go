package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LevelTrace is the level selected by "--level trace".
const LevelTrace = slog.Level(-8)

var (
	configFiles    []string
	level, version string
)

var rootCmd = &cobra.Command{
	Use:          "copytogen",
	Short:        "generate copyTo methods for value object classes",
	Long:         "Generate null-safe, field-by-field copyTo methods for value object classes described in YAML, TOML or JSON descriptors",
	SilenceUsage: true,
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&level, "level", "l", "info", "log level (trace, debug, info, warn, error, debug+1, etc)")
	rootCmd.PersistentFlags().StringSliceVar(&configFiles, "config", []string{}, "config file(s) - multiple config files are merged with last specified file having highest priority")
}

// ParseLevel parses a slog level name. "trace" is accepted in any case.
func ParseLevel(s string) (slog.Level, bool) {
	if strings.EqualFold(s, "trace") {
		return LevelTrace, true
	}
	var ll slog.Level
	if err := ll.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, false
	}
	return ll, true
}

func setLogger(ll slog.Level) *slog.Logger {
	l := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: false,
		Level:     ll,
	}))
	slog.SetDefault(l)
	return l
}

// initConfig installs the logger and loads configuration files and
// COPYTOGEN_* environment variables into viper.
func initConfig() {
	ll, ok := ParseLevel(level)
	if !ok {
		panic("invalid log level: " + level)
	}
	l := setLogger(ll)

	viper.SetEnvPrefix("copytogen")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	readConfig(l)

	if len(version) > 0 {
		viper.Set("version", version)
	}

	// common.log.level only applies when --level was left at its default
	if cl := viper.GetString("common.log.level"); cl != "" && !rootCmd.PersistentFlags().Changed("level") {
		if ll, ok = ParseLevel(cl); !ok {
			panic("invalid log level: " + cl)
		}
		setLogger(ll)
	}
}

// readConfig reads the first --config file, or copytogen.yaml from the
// working directory or /etc, then merges the remaining --config files in
// order.
func readConfig(l *slog.Logger) {
	if len(configFiles) == 0 {
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc")
		viper.SetConfigType("yaml")
		viper.SetConfigName("copytogen")
	} else {
		viper.SetConfigFile(configFiles[0])
	}

	if err := viper.ReadInConfig(); err != nil {
		l.With("error", err, "config", viper.ConfigFileUsed()).Debug("no config file used")
	} else {
		l.With("config", viper.ConfigFileUsed()).Info("using config file")
	}

	for _, file := range configFiles[min(1, len(configFiles)):] {
		data, err := os.ReadFile(file)
		if err != nil {
			l.With("error", err, "file", file).Warn("failed to read config file")
			continue
		}
		if err = viper.MergeConfig(bytes.NewReader(data)); err != nil {
			l.With("error", err, "file", file).Warn("failed to merge config file")
			continue
		}
		l.With("file", file).Info("merged config file")
	}
}
