package cmd

import (
	"fmt"
	"os"

	"github.com/Alain-L/cookielog/analysis"
	"github.com/Alain-L/cookielog/config"

	"github.com/spf13/cobra"
)

// Options is the validated input of a scan.
type Options struct {
	Path    string
	Date    analysis.Date
	Verbose bool
	Basis   analysis.DateBasis
	JSON    bool
	Stats   bool
}

// options merges the config file with the command-line flags and
// validates the result. Flags set explicitly win over the file.
func (f *rootFlags) options(cmd *cobra.Command) (Options, error) {
	cfgPath := f.configPath
	if cfgPath == "" {
		cfgPath = os.Getenv(config.EnvPath)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return Options{}, fmt.Errorf("loading config: %w", err)
	}

	target, err := analysis.ParseDate(f.date)
	if err != nil {
		return Options{}, err
	}

	if err := validateLogFile(f.filename); err != nil {
		return Options{}, err
	}

	flags := cmd.Flags()

	basisStr := cfg.DateBasis
	if flags.Changed("date-basis") {
		basisStr = f.dateBasis
	}
	basis, err := analysis.ParseDateBasis(basisStr)
	if err != nil {
		return Options{}, err
	}

	verbose := cfg.Verbose
	if flags.Changed("verbose") {
		verbose = f.verbose
	}

	jsonOut := cfg.Format == "json"
	if flags.Changed("json") {
		jsonOut = f.jsonOut
	}

	return Options{
		Path:    f.filename,
		Date:    target,
		Verbose: verbose,
		Basis:   basis,
		JSON:    jsonOut,
		Stats:   f.stats,
	}, nil
}
