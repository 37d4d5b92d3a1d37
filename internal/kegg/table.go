package kegg

import (
	"fmt"
	"io"
	"sort"

	"github.com/mkossman/keggdef/internal/expr"
	"github.com/mkossman/keggdef/internal/log"
)

// Row is one reference-table entry: a module with its definition rewritten
// into canonical &/| form.
type Row struct {
	Entry      string
	Name       string
	Definition string
	Canonical  string
	Orthologs  int
}

// BuildTable normalizes every module definition and returns the table rows
// sorted by entry, plus the number of modules skipped because their
// definitions could not be normalized. Skipped modules are reported, not
// fatal: a handful of malformed records must not sink a whole release file.
func BuildTable(modules []Module) ([]Row, int) {
	rows := make([]Row, 0, len(modules))
	skipped := 0
	for _, m := range modules {
		canonical, err := expr.Normalize(m.Definition)
		if err != nil {
			log.Basicf("skipping %s: %v", m.Entry, err)
			skipped++
			continue
		}
		rows = append(rows, Row{
			Entry:      m.Entry,
			Name:       m.Name,
			Definition: m.Definition,
			Canonical:  canonical,
			Orthologs:  len(m.Orthologs),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Entry < rows[j].Entry })
	return rows, skipped
}

// WriteTSV writes the table with a header line.
func WriteTSV(w io.Writer, rows []Row) error {
	if _, err := fmt.Fprintln(w, "entry\tname\tdefinition\tcanonical\torthologs"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", r.Entry, r.Name, r.Definition, r.Canonical, r.Orthologs); err != nil {
			return err
		}
	}
	return nil
}
