package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	flagDir   string
	flagBase  string
	flagFile  string
	exportDir string
	outputFmt string

	checkDuplicates bool
	checkMissing    bool
	sortKeys        bool
)

// Sentinel outcomes. The per-file results have already been rendered by
// the time these are returned; Execute only maps them to exit codes.
var (
	errFindings  = errors.New("findings reported")
	errRunFailed = errors.New("errors reported")
)

// rootCmd is the base command; the check modes live on it as flags.
var rootCmd = &cobra.Command{
	Use:   "cvr-i18n",
	Short: "Lint and tidy locale JSON files",
	Long: `cvr-i18n inspects a directory of locale JSON files (one per locale).
It detects duplicate top-level keys, reports keys missing relative to the
base locale (en.json by default), exports missing keys for translators,
and reorders keys to match the base file's key order.

Examples:
  cvr-i18n -d ./locales -k
  cvr-i18n -m -e ./missing
  cvr-i18n -s -b en.json
  cvr-i18n -f src/locales/de.json -m`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command and exits with 0 when there are no
// findings, 1 when a requested check reported findings, and 2 on any
// operational error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, errFindings):
			os.Exit(1)
		case errors.Is(err, errRunFailed):
			os.Exit(2)
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.cvr-i18n.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flagDir, "directory", "d", "", "locales directory (default: ./locales or ./src/locales)")
	rootCmd.PersistentFlags().StringVarP(&flagBase, "base", "b", "en.json", "base file for key order and completeness, default is en.json")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&checkDuplicates, "duplicated-key", "k", false, "check for duplicate top-level keys in each JSON file")
	rootCmd.PersistentFlags().BoolVarP(&checkMissing, "missing-key", "m", false, "check for missing top-level keys compared to the base file")

	rootCmd.Flags().StringVarP(&exportDir, "export", "e", "", "export missing keys to JSON files in the specified directory")
	rootCmd.Flags().BoolVarP(&sortKeys, "sort", "s", false, "sort keys in JSON files according to the base file's key order")
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "process a single file instead of the entire directory")

	_ = viper.BindPFlag("directory", rootCmd.PersistentFlags().Lookup("directory"))
	_ = viper.BindPFlag("base", rootCmd.PersistentFlags().Lookup("base"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".cvr-i18n")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CVR_I18N")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
