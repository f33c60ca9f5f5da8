/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gncurie/internal/iofs"
	"github.com/gnames/gncurie/internal/iologger"
	app "github.com/gnames/gncurie/pkg"
	"github.com/gnames/gncurie/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command with every subcommand attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gncurie",
		Short:   "Normalizes biomedical source files into CURIE-keyed TSV",
		Long: `gncurie turns downloaded biomedical data files into small,
uniform TSV tables keyed by compact identifiers (CURIEs) such as
NCBIGene:1 or ComplexPortal:CPX-1.

Every source has its own converter subcommand. A converter takes input
and output paths from required flags, everything else about the source
(prefixes, columns, sentinels) is built in:

  gncurie complexportal --input 9606.tsv \
    --labels-output labels --synonyms-output synonyms

Use 'gncurie list' to see all converters with their flags. The
'biomart' subcommand downloads gene tables from Ensembl BioMart.

Configuration precedence (highest to lowest):
  1. Environment variables (GNCURIE_*)
  2. Config file (~/.config/gncurie/config.yaml)
  3. Built-in defaults

  Examples:
    GNCURIE_CONVERT_STRICT    stop at the first malformed row
    GNCURIE_LOG_LEVEL         debug, info, warn, error
    GNCURIE_LOG_DESTINATION   file, stderr, stdout
    GNCURIE_JOBS_NUMBER       outputs written in parallel
    GNCURIE_BIOMART_URL       Ensembl martservice endpoint`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			versionFlag(cmd)
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "gncurie version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gncurie")

	for _, v := range getConvertCmds() {
		rootCmd.AddCommand(v)
	}
	rootCmd.AddCommand(getListCmd())
	rootCmd.AddCommand(getBioMartCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, appending to the log
	// started above.
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		// gn errors are printed where they happen, cobra errors are not.
		if _, ok := err.(*gn.Error); !ok {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNCURIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Converter configuration
	v.BindEnv("convert.strict", "GNCURIE_CONVERT_STRICT")

	// BioMart configuration
	v.BindEnv("biomart.url", "GNCURIE_BIOMART_URL")
	v.BindEnv("biomart.timeout", "GNCURIE_BIOMART_TIMEOUT")
	v.BindEnv("biomart.retries", "GNCURIE_BIOMART_RETRIES")

	// Log configuration
	v.BindEnv("log.level", "GNCURIE_LOG_LEVEL")
	v.BindEnv("log.format", "GNCURIE_LOG_FORMAT")
	v.BindEnv("log.destination", "GNCURIE_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNCURIE_JOBS_NUMBER")

	v.AutomaticEnv()
}
