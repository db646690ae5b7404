// Package cmd implements the command-line interface for cookielog.
// It uses the Cobra library to handle flags and execution.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alain-L/cookielog/config"

	"github.com/spf13/cobra"
)

// Version information (passed from main)
var (
	version string
	commit  string
	date    string
)

// rootFlags holds the raw flag values before validation.
type rootFlags struct {
	filename   string // --filename: cookie log path, "-" for stdin
	date       string // --date: target day, YYYY-MM-DD
	verbose    bool   // --verbose: debug diagnostics on stderr
	jsonOut    bool   // --json: JSON output
	dateBasis  string // --date-basis: utc or offset
	configPath string // --config: optional YAML file
	stats      bool   // --stats: processing summary on stderr
}

// newRootCmd builds the cookielog command writing results to stdout and
// diagnostics to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "cookielog -f FILE -d YYYY-MM-DD",
		Short: "Find the most active cookie for a specific date",
		Long: `cookielog reads a cookie log (cookie,timestamp rows sorted by timestamp,
most recent first) and prints the cookie(s) seen most often on the given day,
one per line. Ties are printed in the order they first appear in the log.

Plain, gzip, zstd, tar and 7z inputs are accepted. Use "-" to read stdin.`,
		Example:       "  cookielog -f cookie_log.csv -d 2018-12-09",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return usageError{err}
			}
			return execute(cmd.Context(), opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&f.filename, "filename", "f", "",
		`Path to the cookie log CSV file ("-" reads stdin)`)
	flags.StringVarP(&f.date, "date", "d", "",
		"Target date in YYYY-MM-DD format")
	flags.BoolVarP(&f.verbose, "verbose", "v", false,
		"Enable verbose output")
	flags.BoolVar(&f.jsonOut, "json", false,
		"Export the result in JSON format")
	flags.StringVar(&f.dateBasis, "date-basis", "utc",
		"How a record's date is taken: utc (convert first) or offset (as written)")
	flags.StringVarP(&f.configPath, "config", "c", "",
		"Path to a YAML config file (default $"+config.EnvPath+")")
	flags.BoolVar(&f.stats, "stats", false,
		"Print a processing summary to stderr")

	_ = cmd.MarkFlagRequired("filename")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

// Execute runs the root command and returns the process exit code.
// This is called by main.go to start the CLI application.
func Execute(v, c, d string) int {
	version = v
	commit = c
	date = d

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// run executes the command with args and maps the outcome to an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	return report(stderr, cmd, err)
}
