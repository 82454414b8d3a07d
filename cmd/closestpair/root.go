package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hupe1980/closestpair"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "CLOSESTPAIR"

// app carries state shared by all subcommands.
type app struct {
	conf   *viper.Viper
	logger *closestpair.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{conf: viper.New(), logger: closestpair.NoopLogger()}

	root := &cobra.Command{
		Use:   "closestpair",
		Short: "Find the closest pair of points in 3D point sets",
		Long: `
closestpair reads point sets from a blob store and reports the two points
with the smallest Euclidean distance using an O(n log n) divide and conquer
search. Point sets ending in .cp3d use the compressed binary format; any
other name is read as text with one "x y z" triple per line.

Flags can also be set through a config file (--config) or environment
variables prefixed with CLOSESTPAIR_, e.g. CLOSESTPAIR_STORE=s3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	flags.String("log-level", "warn", "Log level, one of [debug, info, warn, error].")
	flags.String("log-format", "text", "Log format, one of [text, json].")
	flags.String("store", "local", "Blob store, one of [local, s3, minio].")
	flags.String("root", ".", "Root directory of the local store.")
	flags.String("bucket", "", "Bucket for the s3 and minio stores.")
	flags.String("prefix", "", "Key prefix inside the bucket.")
	flags.String("endpoint", "", "Endpoint for minio, or a custom S3-compatible endpoint.")
	flags.String("region", "", "Region override for s3 and minio.")
	flags.String("access-key", "", "Access key for minio.")
	flags.String("secret-key", "", "Secret key for minio.")
	flags.Bool("secure", true, "Use TLS when talking to minio.")
	flags.Int("read-limit", 0, "Cap blob reads at this many bytes per second. 0 disables the limit.")

	a.conf.SetEnvPrefix(envPrefix)
	a.conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.conf.AutomaticEnv()
	if err := a.conf.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(newSearchCmd(a), newGenerateCmd(a))
	return root
}

// init reads the config file, if any, and builds the logger.
func (a *app) init(stderr io.Writer) error {
	if cfg := a.conf.GetString("config"); cfg != "" {
		a.conf.SetConfigFile(cfg)
		if err := a.conf.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.conf.GetString("log-level"))); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch format := a.conf.GetString("log-format"); format {
	case "text":
		a.logger = closestpair.NewLogger(slog.NewTextHandler(stderr, opts))
	case "json":
		a.logger = closestpair.NewLogger(slog.NewJSONHandler(stderr, opts))
	default:
		return fmt.Errorf("invalid --log-format %q", format)
	}
	return nil
}

// bindFlags binds a subcommand's local flags to the shared configuration.
func (a *app) bindFlags(cmd *cobra.Command) {
	if err := a.conf.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}
}
