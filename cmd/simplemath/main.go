// Command simplemath evaluates scalar and 2D vector operations from the
// command line or from YAML job files, and plots vectors to images.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func getEnvStr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

type app struct {
	logger    *slog.Logger
	printer   *message.Printer
	precision int
	verbose   bool
}

func newLogger(levelName string, verbose bool) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		level = slog.LevelWarn
	}
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newPrinter(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var lang, logLevel string

	rootCmd := &cobra.Command{
		Use:   "simplemath",
		Short: "Scalar math and 2D vector toolbox",
		Long: `simplemath evaluates the scalar helpers (rounding, powers, fast square
root, Taylor-series trigonometry) and the integer/float 2D vector operations.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = newLogger(logLevel, a.verbose)
			a.printer = newPrinter(lang)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", getEnvStr("SIMPLEMATH_LOG_LEVEL", "warn"), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", getEnvStr("SIMPLEMATH_LANG", "en"), "Locale for number formatting")
	rootCmd.PersistentFlags().IntVar(&a.precision, "precision", getEnvInt("SIMPLEMATH_PRECISION", 4), "Digits after the decimal point")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "simplemath v%s (%s)\n", version, commit)
		},
	})
	rootCmd.AddCommand(
		a.scalarCmd(),
		a.vecCmd(),
		a.batchCmd(),
		a.plotCmd(),
		a.triangularCmd(),
		a.binaryCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
