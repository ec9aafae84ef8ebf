package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsscripter/rsscripter/internal/checksum"
	"github.com/rsscripter/rsscripter/internal/model"
	"github.com/rsscripter/rsscripter/pkg/rsscripter"
)

type sliceRowSource struct {
	rows [][]ExportValue
	pos  int
	err  error
}

func (s *sliceRowSource) Next() bool {
	if s.pos >= len(s.rows) {
		return false
	}
	s.pos++
	return true
}

func (s *sliceRowSource) Row() ([]ExportValue, error) {
	return s.rows[s.pos-1], nil
}

func (s *sliceRowSource) Err() error { return s.err }

func numeric(raw string) ExportValue { return ExportValue{Kind: KindNumeric, Valid: true, Raw: raw} }
func text(raw string) ExportValue    { return ExportValue{Kind: KindText, Valid: true, Raw: raw} }

func newDataTable(t *testing.T) *model.Table {
	t.Helper()
	tbl := model.NewTable("orders")
	require.NoError(t, tbl.Columns().Add(&model.Column{Name: "id", DataType: "integer"}))
	require.NoError(t, tbl.Columns().Add(&model.Column{Name: "note", DataType: "text", Nullable: true}))
	require.NoError(t, tbl.Constraints().Add(&model.Constraint{
		Name:            "orders_pkey",
		Kind:            model.ConstraintPrimaryKey,
		Definition:      "PRIMARY KEY (id)",
		ColumnPositions: []int{1},
	}))
	s := model.NewSchema("public")
	require.NoError(t, s.Tables().Add(tbl))
	return tbl
}

func TestKeyColumnsPriority(t *testing.T) {
	tbl := newDataTable(t)
	cols, err := KeyColumns(tbl)
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "id", cols[0].Name)

	// Without a primary key the first unique constraint wins.
	noPK := model.NewTable("t")
	require.NoError(t, noPK.Columns().Add(&model.Column{Name: "a"}))
	require.NoError(t, noPK.Columns().Add(&model.Column{Name: "b"}))
	require.NoError(t, noPK.Constraints().Add(&model.Constraint{
		Name: "t_b_key", Kind: model.ConstraintUnique, ColumnPositions: []int{2},
	}))
	cols, err = KeyColumns(noPK)
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "b", cols[0].Name)

	// Without any key constraint every live column participates.
	bare := model.NewTable("bare")
	require.NoError(t, bare.Columns().Add(&model.Column{Name: "x"}))
	require.NoError(t, bare.Columns().Add(&model.Column{Name: "y"}))
	cols, err = KeyColumns(bare)
	require.NoError(t, err)
	assert.Len(t, cols, 2)
}

func TestWriteDataScriptLiterals(t *testing.T) {
	tbl := newDataTable(t)
	rows := &sliceRowSource{rows: [][]ExportValue{
		{numeric("1"), text("it's a \\path")},
		{numeric("2"), {Kind: KindText}},
	}}

	var b strings.Builder
	require.NoError(t, WriteDataScript(&b, tbl, rows))
	got := b.String()

	assert.Contains(t, got, "INSERT INTO public.orders (id, note)\nVALUES\n")
	assert.Contains(t, got, `	(1, 'it''s a \\path')`)
	assert.Contains(t, got, "\t(2, NULL);\n")
	assert.True(t, strings.HasSuffix(got, "\nVACUUM public.orders;\nANALYZE public.orders;\n"))
}

func TestWriteDataScriptDateAndTimestampQuoted(t *testing.T) {
	tbl := model.NewTable("events")
	require.NoError(t, tbl.Columns().Add(&model.Column{Name: "d", DataType: "date"}))
	require.NoError(t, tbl.Columns().Add(&model.Column{Name: "ts", DataType: "timestamp without time zone"}))
	rows := &sliceRowSource{rows: [][]ExportValue{{
		{Kind: KindDate, Valid: true, Raw: "2024-03-01"},
		{Kind: KindTimestamp, Valid: true, Raw: "2024-03-01 12:30:45.123"},
	}}}

	var b strings.Builder
	require.NoError(t, WriteDataScript(&b, tbl, rows))
	assert.Contains(t, b.String(), "('2024-03-01', '2024-03-01 12:30:45.123');")
}

func TestWriteDataScriptUnknownKindFails(t *testing.T) {
	tbl := model.NewTable("t")
	require.NoError(t, tbl.Columns().Add(&model.Column{Name: "x"}))
	rows := &sliceRowSource{rows: [][]ExportValue{{{Kind: ValueKind(99), Valid: true, Raw: "?"}}}}

	var b strings.Builder
	err := WriteDataScript(&b, tbl, rows)
	require.Error(t, err)
	assert.ErrorIs(t, err, rsscripter.ErrCatalogShape)
}

func TestWriteDataScriptSplitsAtMaxBatchRows(t *testing.T) {
	tbl := model.NewTable("big")
	require.NoError(t, tbl.Columns().Add(&model.Column{Name: "id", DataType: "integer"}))

	var source sliceRowSource
	for i := 0; len(source.rows) < rsscripter.MaxBatchRows+1; i++ {
		// Skip values whose checksum happens to close a batch early, so the
		// only split comes from the row cap.
		v := fmt.Sprintf("%d", i)
		if checksum.IsBatchBoundary(checksum.Row([]string{v})) {
			continue
		}
		source.rows = append(source.rows, []ExportValue{numeric(v)})
	}

	var b strings.Builder
	require.NoError(t, WriteDataScript(&b, tbl, &source))
	assert.Equal(t, 2, strings.Count(b.String(), "INSERT INTO"))
}

func TestWriteDataScriptSplitsAtChecksumBoundary(t *testing.T) {
	// Brute-force a value whose key checksum lands on the boundary.
	boundary := ""
	for i := 0; i < 100000; i++ {
		v := fmt.Sprintf("%d", i)
		if checksum.IsBatchBoundary(checksum.Row([]string{v})) {
			boundary = v
			break
		}
	}
	require.NotEmpty(t, boundary)

	tbl := model.NewTable("t")
	require.NoError(t, tbl.Columns().Add(&model.Column{Name: "id", DataType: "integer"}))
	rows := &sliceRowSource{rows: [][]ExportValue{
		{numeric(boundary)},
		{numeric("1")},
	}}

	var b strings.Builder
	require.NoError(t, WriteDataScript(&b, tbl, rows))
	got := b.String()

	// The boundary row closes its batch; the next row opens a new statement.
	assert.Equal(t, 2, strings.Count(got, "INSERT INTO"))
	assert.Contains(t, got, "("+boundary+");\n")
}

func TestWriteDataScriptDeterministicSplits(t *testing.T) {
	tbl := model.NewTable("t")
	require.NoError(t, tbl.Columns().Add(&model.Column{Name: "id", DataType: "integer"}))

	build := func() string {
		var source sliceRowSource
		for i := 0; i < 5000; i++ {
			source.rows = append(source.rows, []ExportValue{numeric(fmt.Sprintf("%d", i))})
		}
		var b strings.Builder
		require.NoError(t, WriteDataScript(&b, tbl, &source))
		return b.String()
	}
	assert.Equal(t, build(), build())
}
