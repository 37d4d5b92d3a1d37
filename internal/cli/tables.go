package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkossman/keggdef/internal/store"
)

var tablesCmd = &cobra.Command{
	Use:   "tables [name]",
	Short: "List or print reference tables cached under the data directory",
	Long: `Without arguments, tables lists the reference tables that build --cache
has stored under the data directory. With a name, it prints that table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	tables := store.NewTablesEntity(cfg.DataDir)
	if len(args) == 1 {
		return tables.PrintTable(cmd.OutOrStdout(), args[0])
	}

	names, err := tables.ListNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
