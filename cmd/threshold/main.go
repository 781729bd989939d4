package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"threshold-cli/internal/app"
	"threshold-cli/pkg/models"
)

// Build-time variables injected via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	date      = "unknown"
	goVersion = runtime.Version()
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "threshold",
		Short: "Apply the threshold transform to the built-in value",
		Long: `threshold evaluates its built-in input (42) against a fixed limit of 100:
inputs below the limit are doubled, the rest are offset by the limit.
The result is printed as a single "Result = <n>" line.

Arithmetic is 32-bit. With --overflow wrap (the default) results wrap around;
with --overflow error an overflowing result is reported as an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
				printVersion(cmd)
				return nil
			}

			request, err := buildRequestFromFlags(cmd)
			if err != nil {
				return fmt.Errorf("invalid arguments: %w", err)
			}

			return app.Run(request, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print detailed version information including build version, commit, date, and platform details.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd)
		},
	})

	root.PersistentFlags().StringP("config", "c", "", "config file path (default ~/.config/threshold/config.toml)")
	root.PersistentFlags().String("log-level", "", "diagnostic log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "", "diagnostic log format (console, json)")
	root.PersistentFlags().BoolP("version", "v", false, "print version information")

	root.Flags().String("overflow", "", "overflow policy for 32-bit arithmetic (wrap, error)")

	root.SilenceUsage = true
	root.SilenceErrors = true

	return root
}

func printVersion(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "threshold version %s\n", version)
	fmt.Fprintf(out, "  commit: %s\n", commit)
	fmt.Fprintf(out, "  built: %s\n", date)
	fmt.Fprintf(out, "  go version: %s\n", goVersion)
	fmt.Fprintf(out, "  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// buildRequestFromFlags constructs a CheckRequest from command flags
func buildRequestFromFlags(cmd *cobra.Command) (*models.CheckRequest, error) {
	request := models.NewCheckRequest()

	var err error

	if request.ConfigPath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	if request.LogLevel, err = cmd.Flags().GetString("log-level"); err != nil {
		return nil, fmt.Errorf("invalid log-level flag: %w", err)
	}

	if request.LogFormat, err = cmd.Flags().GetString("log-format"); err != nil {
		return nil, fmt.Errorf("invalid log-format flag: %w", err)
	}

	if request.OverflowPolicy, err = cmd.Flags().GetString("overflow"); err != nil {
		return nil, fmt.Errorf("invalid overflow flag: %w", err)
	}

	return request, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
