package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mkossman/keggdef/internal/expr"
	"github.com/mkossman/keggdef/internal/log"
	"github.com/mkossman/keggdef/internal/util"
)

var normalizeFile string

var normalizeCmd = &cobra.Command{
	Use:   "normalize [definition ...]",
	Short: "Rewrite raw definitions into canonical expressions",
	Long: `Normalize reads raw definitions from its arguments, from a file (-f),
or from stdin (one definition per line), and prints one canonical expression
per line. Definitions with unbalanced parentheses are reported on stderr and
make the command exit nonzero once all input is processed.`,
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeFile, "file", "f", "", "read definitions from file, one per line")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	definitions := args
	if len(definitions) == 0 {
		var r io.Reader = cmd.InOrStdin()
		if normalizeFile != "" {
			path, err := util.GetAbsolutePath(normalizeFile)
			if err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return errors.Wrapf(err, "opening %s", normalizeFile)
			}
			defer f.Close()
			r = f
		}
		var err error
		if definitions, err = readDefinitions(r); err != nil {
			return err
		}
	}

	failed := 0
	for i, def := range definitions {
		canonical, err := expr.Normalize(def)
		if err != nil {
			log.Errorf("definition %d: %v", i+1, err)
			failed++
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), canonical)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d definition(s) could not be normalized", failed, len(definitions))
	}
	return nil
}

func readDefinitions(r io.Reader) ([]string, error) {
	var definitions []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			definitions = append(definitions, line)
		}
	}
	return definitions, errors.Wrap(scanner.Err(), "reading definitions")
}
