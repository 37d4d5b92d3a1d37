// Package cli implements the keggdef command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mkossman/keggdef/internal/log"
)

var (
	cfg       *Config
	verbosity int
)

var rootCmd = &cobra.Command{
	Use:   "keggdef",
	Short: "Normalize KEGG MODULE definitions into canonical boolean expressions",
	Long: `keggdef rewrites the ambiguous KEGG MODULE DEFINITION notation into
unambiguous boolean expressions (& for AND, | for OR) and builds reference
tables of normalized definitions from KEGG flat files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = loadConfig(); err != nil {
			return err
		}
		if verbosity == 0 {
			verbosity = cfg.Verbosity
		}
		log.SetLevel(log.LevelFromInt(verbosity))
		log.Detailedf("log level %s, data dir %s", log.CurrentLevel(), cfg.DataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity (repeatable)")
}

// Execute runs the root command and exits nonzero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("keggdef: %v", err)
		os.Exit(1)
	}
}
