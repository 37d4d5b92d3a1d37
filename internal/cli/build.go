package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mkossman/keggdef/internal/kegg"
	"github.com/mkossman/keggdef/internal/log"
	"github.com/mkossman/keggdef/internal/store"
	"github.com/mkossman/keggdef/internal/util"
)

var (
	buildInput  string
	buildOutput string
	buildDB     string
	buildCache  bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a reference table from a KEGG module flat file",
	Long: `Build parses MODULE records from a flat file (plain, gzipped, or a
gzipped tarball), normalizes every DEFINITION, and writes the resulting
reference table as TSV. Records whose definitions cannot be normalized are
skipped and reported. Optionally the table is also written to a SQLite
database (--db) and cached under the keggdef data directory (--cache).`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildInput, "input", "i", "", "module flat file, .gz, or .tar.gz (required)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output TSV file (default stdout)")
	buildCmd.Flags().StringVar(&buildDB, "db", "", "also write the table to a SQLite database")
	buildCmd.Flags().BoolVar(&buildCache, "cache", false, "also store the table under the data directory")
	buildCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	input, err := util.GetAbsolutePath(buildInput)
	if err != nil {
		return err
	}

	modules, err := kegg.ReadFile(input)
	if err != nil {
		return err
	}
	log.Basicf("parsed %d module record(s) from %s", len(modules), buildInput)

	rows, skipped := kegg.BuildTable(modules)
	if skipped > 0 {
		log.Basicf("skipped %d module(s) with malformed definitions", skipped)
	}

	var buf bytes.Buffer
	if err := kegg.WriteTSV(&buf, rows); err != nil {
		return errors.Wrap(err, "writing table")
	}

	if buildOutput != "" {
		path, err := util.GetAbsolutePath(buildOutput)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return errors.Wrapf(err, "writing %s", buildOutput)
		}
		log.Basicf("wrote %d row(s) to %s", len(rows), buildOutput)
	} else {
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return err
		}
	}

	if buildDB != "" {
		db, err := store.OpenDB(buildDB)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.UpsertRows(rows); err != nil {
			return err
		}
		log.Basicf("upserted %d row(s) into %s", len(rows), buildDB)
	}

	if buildCache {
		tables := store.NewTablesEntity(cfg.DataDir)
		name := tableName(buildInput)
		if err := tables.Save(name, buf.Bytes()); err != nil {
			return err
		}

		// Keep the raw flat file next to the table so the build can be
		// reproduced after the original input is gone.
		raw, err := os.ReadFile(input)
		if err != nil {
			return errors.Wrapf(err, "caching %s", buildInput)
		}
		if err := store.NewSourcesEntity(cfg.DataDir).Save(filepath.Base(input), raw); err != nil {
			return err
		}
		log.Basicf("cached table and source as %s", name)
	}
	return nil
}

// tableName derives the cache name from the input file, dropping archive
// and flat-file extensions.
func tableName(input string) string {
	name := filepath.Base(input)
	for _, ext := range []string{".gz", ".tar", ".txt"} {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}
