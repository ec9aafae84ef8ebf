package catalog

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rsscripter/rsscripter/internal/model"
	"github.com/rsscripter/rsscripter/internal/quoting"
	"github.com/rsscripter/rsscripter/internal/render"
	"github.com/rsscripter/rsscripter/pkg/rsscripter"
)

// Exporter streams table rows from the source database into the batched
// INSERT script. One export query runs at a time; the result reader is
// closed before the next table starts.
type Exporter struct {
	pool *pgxpool.Pool
}

// NewExporter creates a data exporter.
func NewExporter(pool *pgxpool.Pool) *Exporter {
	if pool == nil {
		panic("catalog: connection pool cannot be nil")
	}
	return &Exporter{pool: pool}
}

// Export queries up to maxRows rows of t ordered by its key columns and
// writes the batched INSERT script to w.
func (e *Exporter) Export(ctx context.Context, w io.Writer, t *model.Table, maxRows int64) error {
	if maxRows <= 0 {
		return fmt.Errorf("%w: export row limit must be positive", rsscripter.ErrInvalidConfig)
	}
	query, kinds, err := exportQuery(t, maxRows)
	if err != nil {
		return err
	}
	rows, err := e.pool.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to query rows of %s: %w", t.Name, err)
	}
	defer rows.Close()

	source := &pgxRowSource{rows: rows, kinds: kinds}
	if err := render.WriteDataScript(w, t, source); err != nil {
		return fmt.Errorf("failed to export %s: %w", t.Name, err)
	}
	return nil
}

// exportQuery builds the SELECT for one table: every live column formatted
// server-side to its literal text form, ordered by the key columns, capped at
// maxRows. Returns the per-column value kinds in column order.
func exportQuery(t *model.Table, maxRows int64) (string, []render.ValueKind, error) {
	if t.Schema() == nil {
		return "", nil, fmt.Errorf("table %q is not attached to a schema", t.Name)
	}
	cols := t.Columns().Items()
	if len(cols) == 0 {
		return "", nil, fmt.Errorf("%w: table %q has no columns", rsscripter.ErrCatalogShape, t.Name)
	}

	exprs := make([]string, len(cols))
	kinds := make([]render.ValueKind, len(cols))
	for i, c := range cols {
		kinds[i] = KindForDataType(c.DataType)
		exprs[i] = exportExpression(c.Name, kinds[i])
	}

	keyCols, err := render.KeyColumns(t)
	if err != nil {
		return "", nil, err
	}
	orderBy := make([]string, len(keyCols))
	for i, c := range keyCols {
		orderBy[i] = quoting.Quote(c.Name, quoting.Always, false)
	}

	tableName := quoting.QualifiedName(t.Schema().Name, t.Name, quoting.Always)
	query := fmt.Sprintf("SELECT %s\nFROM %s\nORDER BY %s\nLIMIT %d",
		strings.Join(exprs, ", "), tableName, strings.Join(orderBy, ", "), maxRows)
	return query, kinds, nil
}

// exportExpression formats one column to the exact literal text the script
// needs, so the Go side never re-formats values.
func exportExpression(name string, kind render.ValueKind) string {
	quoted := quoting.Quote(name, quoting.Always, false)
	switch kind {
	case render.KindDate:
		return fmt.Sprintf("to_char(%s, 'YYYY-MM-DD')", quoted)
	case render.KindTimestamp:
		return fmt.Sprintf("to_char(%s, 'YYYY-MM-DD HH24:MI:SS.MS')", quoted)
	case render.KindBool:
		return fmt.Sprintf("CASE WHEN %s THEN 'true' WHEN NOT %s THEN 'false' END", quoted, quoted)
	default:
		return fmt.Sprintf("%s::text", quoted)
	}
}

// KindForDataType classifies a catalog data type for literal rendering.
func KindForDataType(dataType string) render.ValueKind {
	dt := strings.ToLower(strings.TrimSpace(dataType))
	switch {
	case dt == "boolean" || dt == "bool":
		return render.KindBool
	case dt == "date":
		return render.KindDate
	case strings.HasPrefix(dt, "timestamp"):
		return render.KindTimestamp
	case dt == "smallint" || dt == "integer" || dt == "bigint" ||
		dt == "int2" || dt == "int4" || dt == "int8" ||
		dt == "real" || dt == "float4" || dt == "float8" ||
		dt == "double precision" ||
		strings.HasPrefix(dt, "numeric") || strings.HasPrefix(dt, "decimal"):
		return render.KindNumeric
	default:
		return render.KindText
	}
}

// pgxRowSource adapts a pgx result to the renderer's row stream. Every
// column arrives as text (or NULL) because the export query formats values
// server-side.
type pgxRowSource struct {
	rows  pgx.Rows
	kinds []render.ValueKind
	err   error
}

func (s *pgxRowSource) Next() bool {
	if s.err != nil {
		return false
	}
	return s.rows.Next()
}

func (s *pgxRowSource) Row() ([]render.ExportValue, error) {
	raw := make([]*string, len(s.kinds))
	dest := make([]interface{}, len(s.kinds))
	for i := range raw {
		dest[i] = &raw[i]
	}
	if err := s.rows.Scan(dest...); err != nil {
		s.err = err
		return nil, fmt.Errorf("failed to scan export row: %w", err)
	}
	values := make([]render.ExportValue, len(s.kinds))
	for i, r := range raw {
		values[i] = render.ExportValue{Kind: s.kinds[i]}
		if r != nil {
			values[i].Valid = true
			values[i].Raw = *r
		}
	}
	return values, nil
}

func (s *pgxRowSource) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.rows.Err()
}

// Verify pgxRowSource implements the RowSource interface at compile time
var _ render.RowSource = (*pgxRowSource)(nil)
