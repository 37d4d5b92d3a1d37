package kegg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTable(t *testing.T) {
	modules := []Module{
		{Entry: "M00002", Name: "second", Definition: "K01803 K00134+K00927", Orthologs: []string{"K01803", "K00134", "K00927"}},
		{Entry: "M00001", Name: "first", Definition: "(K00844,K12407) K01810", Orthologs: []string{"K00844", "K12407", "K01810"}},
		{Entry: "M00099", Name: "broken", Definition: "(K00001 K00002"},
	}

	rows, skipped := BuildTable(modules)
	assert.Equal(t, 1, skipped)
	assert.Len(t, rows, 2)

	// Sorted by entry, normalized definitions.
	assert.Equal(t, "M00001", rows[0].Entry)
	assert.Equal(t, "K00844|K12407 K01810", rows[0].Canonical)
	assert.Equal(t, 3, rows[0].Orthologs)

	assert.Equal(t, "M00002", rows[1].Entry)
	assert.Equal(t, "K01803 K00134&K00927", rows[1].Canonical)
}

func TestWriteTSV(t *testing.T) {
	rows := []Row{
		{Entry: "M00001", Name: "first", Definition: "K00001+K00002", Canonical: "K00001&K00002", Orthologs: 2},
	}

	var buf bytes.Buffer
	assert.NoError(t, WriteTSV(&buf, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "entry\tname\tdefinition\tcanonical\torthologs", lines[0])
	assert.Equal(t, "M00001\tfirst\tK00001+K00002\tK00001&K00002\t2", lines[1])
}
