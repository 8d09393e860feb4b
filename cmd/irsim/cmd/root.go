package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "IRSIM"

	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagOutput    = "output"
	flagStartTime = "start-time"
)

// Settings are the runtime options of the CLI. Flags win over IRSIM_*
// environment variables, which win over the optional settings file.
type Settings struct {
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	Output    string `mapstructure:"output"`
	StartTime int64  `mapstructure:"start-time"`
}

// NewRootCmd creates the irsim command tree.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "irsim",
		Short:         "Run dated interest rate swap scenarios against an in-memory datedirs keeper",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindSettings(v, cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagConfig, "", "settings file (yaml)")
	flags.String(flagLogLevel, "info", "log level: trace, debug, info, warn, error or disabled")
	flags.String(flagLogFormat, "plain", "log format: plain or json")
	flags.String(flagOutput, "text", "report format: text or json")
	flags.Int64(flagStartTime, 0, "overrides the scenario start time (unix seconds)")

	rootCmd.AddCommand(
		RunCmd(v),
		ValidateCmd(v),
		ExampleCmd(),
	)
	return rootCmd
}

func bindSettings(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read settings %s: %w", path, err)
		}
	}
	return nil
}

// LoadSettings returns the merged settings of v.
func LoadSettings(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	switch s.Output {
	case "text", "json":
	default:
		return Settings{}, fmt.Errorf("unknown output format %q", s.Output)
	}
	return s, nil
}

// NewLogger builds the CLI logger writing to w.
func NewLogger(w io.Writer, s Settings) (log.Logger, error) {
	level, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	opts := []log.Option{log.LevelOption(level)}
	switch s.LogFormat {
	case "", "plain":
	case "json":
		opts = append(opts, log.OutputJSONOption())
	default:
		return nil, fmt.Errorf("unknown log format %q", s.LogFormat)
	}
	return log.NewLogger(w, opts...).With("module", "irsim"), nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
