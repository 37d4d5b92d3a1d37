// Package store persists built reference tables: as named files under the
// keggdef data directory, and as a SQLite database for tools that want to
// query modules by accession.
package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Entity is a directory-backed store of named text files.
type Entity struct {
	Dir           string
	FileExtension string
}

func NewEntity(dir, extension string) *Entity {
	return &Entity{Dir: dir, FileExtension: extension}
}

func (e *Entity) BuildFilePath(name string) string {
	return filepath.Join(e.Dir, name+e.FileExtension)
}

func (e *Entity) Exists(name string) bool {
	_, err := os.Stat(e.BuildFilePath(name))
	return err == nil
}

func (e *Entity) Load(name string) ([]byte, error) {
	content, err := os.ReadFile(e.BuildFilePath(name))
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", name)
	}
	return content, nil
}

func (e *Entity) Save(name string, content []byte) error {
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return errors.Wrapf(err, "creating %s", e.Dir)
	}
	if err := os.WriteFile(e.BuildFilePath(name), content, 0644); err != nil {
		return errors.Wrapf(err, "saving %s", name)
	}
	return nil
}

func (e *Entity) Remove(name string) error {
	return os.Remove(e.BuildFilePath(name))
}

// ListNames returns the stored names, without extensions.
func (e *Entity) ListNames() ([]string, error) {
	dirEntries, err := os.ReadDir(e.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "listing %s", e.Dir)
	}

	var names []string
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if e.FileExtension != "" && !strings.HasSuffix(name, e.FileExtension) {
			continue
		}
		names = append(names, strings.TrimSuffix(name, e.FileExtension))
	}
	return names, nil
}

// TablesEntity stores built reference tables under the data dir.
type TablesEntity struct {
	*Entity
}

func NewTablesEntity(dataDir string) *TablesEntity {
	return &TablesEntity{Entity: NewEntity(filepath.Join(dataDir, "tables"), ".tsv")}
}

// NewSourcesEntity stores the raw flat files (possibly compressed) that
// tables were built from, under their original file names.
func NewSourcesEntity(dataDir string) *Entity {
	return NewEntity(filepath.Join(dataDir, "sources"), "")
}

// Table is one stored reference table.
type Table struct {
	Name    string
	Content string
}

// Get loads a table from file.
func (o *TablesEntity) Get(name string) (ret *Table, err error) {
	var content []byte
	if content, err = o.Load(name); err != nil {
		return ret, err
	}

	ret = &Table{Name: name, Content: string(content)}
	return ret, err
}

// PrintTable writes a stored table's content to w.
func (o *TablesEntity) PrintTable(w io.Writer, name string) (err error) {
	var table *Table
	if table, err = o.Get(name); err != nil {
		return err
	}
	fmt.Fprintln(w, table.Content)
	return err
}
