// Package kegg reads KEGG MODULE flat-file records and builds reference
// tables of normalized definitions from them.
package kegg

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Module is one MODULE record from a KEGG flat file.
type Module struct {
	Entry      string
	Name       string
	Definition string
	Orthologs  []string
	Classes    []string
}

// Flat-file layout: the field name occupies the first 12 columns, the value
// starts at column 13. Continuation lines leave the name columns blank.
// Records end with "///".
const (
	fieldWidth       = 12
	recordTerminator = "///"
)

// ParseModules reads all MODULE records from r. A record missing its ENTRY
// field is malformed and aborts the parse.
func ParseModules(r io.Reader) ([]Module, error) {
	var (
		modules []Module
		current Module
		field   string
		seen    bool
	)

	flush := func() error {
		if !seen {
			return nil
		}
		if current.Entry == "" {
			return errors.New("record without ENTRY field")
		}
		current.Orthologs = lo.Uniq(current.Orthologs)
		modules = append(modules, current)
		current = Module{}
		seen = false
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, recordTerminator) {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		var value string
		if len(line) > fieldWidth {
			value = line[fieldWidth:]
		}
		if name := strings.TrimSpace(left(line, fieldWidth)); name != "" {
			field = name
		}
		seen = true

		switch field {
		case "ENTRY":
			current.Entry = firstField(value)
		case "NAME":
			current.Name = joinValue(current.Name, strings.TrimSpace(value))
		case "DEFINITION":
			current.Definition = joinValue(current.Definition, strings.TrimSpace(value))
		case "ORTHOLOGY":
			current.Orthologs = append(current.Orthologs, orthologKeys(value)...)
		case "CLASS":
			for _, c := range strings.Split(strings.TrimSpace(value), ";") {
				if c = strings.TrimSpace(c); c != "" {
					current.Classes = append(current.Classes, c)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading flat file")
	}

	// Tolerate a final record without the /// terminator.
	if err := flush(); err != nil {
		return nil, err
	}
	return modules, nil
}

func left(line string, n int) string {
	if len(line) < n {
		return line
	}
	return line[:n]
}

func firstField(value string) string {
	return firstOf(strings.Fields(value))
}

func firstOf(fields []string) string {
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func joinValue(existing, next string) string {
	if existing == "" {
		return next
	}
	if next == "" {
		return existing
	}
	return existing + " " + next
}

// orthologKeys extracts the ortholog accessions from an ORTHOLOGY line. The
// key is the first whitespace-separated field and may group several
// accessions with commas (alternatives) or plus signs (complex members).
func orthologKeys(value string) []string {
	key := firstField(value)
	if key == "" {
		return nil
	}
	var keys []string
	for _, k := range strings.FieldsFunc(key, func(r rune) bool { return r == ',' || r == '+' }) {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
