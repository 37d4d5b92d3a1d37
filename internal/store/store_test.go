package store

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkossman/keggdef/internal/kegg"
)

func TestTablesEntityRoundTrip(t *testing.T) {
	tables := NewTablesEntity(t.TempDir())

	assert.False(t, tables.Exists("release-2026-08"))
	require.NoError(t, tables.Save("release-2026-08", []byte("entry\tname\nM00001\tfirst\n")))
	assert.True(t, tables.Exists("release-2026-08"))

	table, err := tables.Get("release-2026-08")
	require.NoError(t, err)
	assert.Equal(t, "release-2026-08", table.Name)
	assert.Contains(t, table.Content, "M00001")

	names, err := tables.ListNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"release-2026-08"}, names)

	require.NoError(t, tables.Remove("release-2026-08"))
	assert.False(t, tables.Exists("release-2026-08"))
}

func TestTablesEntityPrintTable(t *testing.T) {
	tables := NewTablesEntity(t.TempDir())
	require.NoError(t, tables.Save("release-2026-08", []byte("entry\tname\nM00001\tfirst")))

	var buf bytes.Buffer
	require.NoError(t, tables.PrintTable(&buf, "release-2026-08"))
	assert.Equal(t, "entry\tname\nM00001\tfirst\n", buf.String())

	assert.Error(t, tables.PrintTable(&buf, "missing"))
}

func TestSourcesEntityKeepsFileName(t *testing.T) {
	sources := NewSourcesEntity(t.TempDir())
	require.NoError(t, sources.Save("module.tar.gz", []byte{0x1f, 0x8b, 0x08}))

	assert.True(t, sources.Exists("module.tar.gz"))
	content, err := sources.Load("module.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1f, 0x8b, 0x08}, content)

	names, err := sources.ListNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"module.tar.gz"}, names)
}

func TestTablesEntityListEmpty(t *testing.T) {
	tables := NewTablesEntity(t.TempDir())
	names, err := tables.ListNames()
	assert.NoError(t, err)
	assert.Empty(t, names)
}

func TestDBUpsertAndQuery(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "modules.db"))
	require.NoError(t, err)
	defer db.Close()

	rows := []kegg.Row{
		{Entry: "M00001", Name: "first", Definition: "K00001+K00002", Canonical: "K00001&K00002", Orthologs: 2},
		{Entry: "M00002", Name: "second", Definition: "K00003,K00004", Canonical: "K00003|K00004", Orthologs: 2},
	}
	require.NoError(t, db.UpsertRows(rows))

	n, err := db.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := db.Module("M00001")
	require.NoError(t, err)
	assert.Equal(t, "K00001&K00002", got.Canonical)

	// Upsert replaces, it does not duplicate.
	rows[0].Canonical = "K00001"
	require.NoError(t, db.UpsertRows(rows[:1]))
	n, err = db.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err = db.Module("M00001")
	require.NoError(t, err)
	assert.Equal(t, "K00001", got.Canonical)

	_, err = db.Module("M99999")
	assert.Error(t, err)
}
