package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rsscripter/rsscripter/internal/checksum"
	"github.com/rsscripter/rsscripter/internal/model"
	"github.com/rsscripter/rsscripter/pkg/rsscripter"
)

// ValueKind classifies an exported value for literal rendering. The kind is
// derived from the driver-reported column type, not from the value text.
type ValueKind int

const (
	KindNumeric ValueKind = iota
	KindBool
	KindText
	KindDate
	KindTimestamp
)

// ExportValue is one cell of an exported row, already formatted by the
// catalog layer: numerics and booleans in SQL spelling, dates as YYYY-MM-DD,
// timestamps as YYYY-MM-DD HH:MM:SS.mmm, text verbatim.
type ExportValue struct {
	Kind  ValueKind
	Valid bool // false renders NULL
	Raw   string
}

// RowSource streams exported rows in live-column order.
type RowSource interface {
	// Next advances to the next row, returning false at end of stream.
	Next() bool

	// Row returns the current row's values, one per live column.
	Row() ([]ExportValue, error)

	// Err returns the error that terminated iteration, if any.
	Err() error
}

// KeyColumns returns the columns that order and checksum the export: the
// primary key's columns when present, else the first unique constraint's
// columns, else every live column.
func KeyColumns(t *model.Table) ([]*model.Column, error) {
	if pk := t.PrimaryKey(); pk != nil {
		return pk.Columns()
	}
	if uniques := t.UniqueConstraints(); len(uniques) > 0 {
		return uniques[0].Columns()
	}
	return t.Columns().Items(), nil
}

// WriteDataScript renders the batched INSERT script for a table's rows.
// A new INSERT statement starts whenever the current batch reaches the fixed
// row cap or the row's key checksum lands on the batch boundary; the
// pseudo-random boundary keeps statements bounded without a fixed-size cliff
// that would make every regeneration diff the same way. A VACUUM and ANALYZE
// are appended after the final batch.
func WriteDataScript(w io.Writer, t *model.Table, rows RowSource) error {
	cols := t.Columns().Items()
	keyCols, err := KeyColumns(t)
	if err != nil {
		return err
	}
	keyIndexes := make([]int, 0, len(keyCols))
	for _, kc := range keyCols {
		for i, c := range cols {
			if c == kc {
				keyIndexes = append(keyIndexes, i)
				break
			}
		}
	}

	name := tableName(t)
	header := insertHeader(name, cols)
	batchRows := 0

	for rows.Next() {
		values, err := rows.Row()
		if err != nil {
			return err
		}
		if len(values) != len(cols) {
			return fmt.Errorf("%w: table %s row has %d values for %d columns",
				rsscripter.ErrCatalogShape, name, len(values), len(cols))
		}

		if batchRows == 0 {
			if _, err := io.WriteString(w, header); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, ",\n"); err != nil {
				return err
			}
		}
		tuple, err := rowTuple(values)
		if err != nil {
			return fmt.Errorf("table %s: %w", name, err)
		}
		if _, err := io.WriteString(w, tuple); err != nil {
			return err
		}
		batchRows++

		keyValues := make([]string, len(keyIndexes))
		for i, idx := range keyIndexes {
			if values[idx].Valid {
				keyValues[i] = values[idx].Raw
			}
		}
		if batchRows >= rsscripter.MaxBatchRows || checksum.IsBatchBoundary(checksum.Row(keyValues)) {
			if _, err := io.WriteString(w, ";\n"); err != nil {
				return err
			}
			batchRows = 0
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if batchRows > 0 {
		if _, err := io.WriteString(w, ";\n"); err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "\nVACUUM "+name+";\nANALYZE "+name+";\n")
	return err
}

func insertHeader(tableName string, cols []*model.Column) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = q(c.Name)
	}
	return "INSERT INTO " + tableName + " (" + strings.Join(names, ", ") + ")\nVALUES\n"
}

func rowTuple(values []ExportValue) (string, error) {
	var b strings.Builder
	b.WriteString("\t(")
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		lit, err := literal(v)
		if err != nil {
			return "", err
		}
		b.WriteString(lit)
	}
	b.WriteString(")")
	return b.String(), nil
}

func literal(v ExportValue) (string, error) {
	if !v.Valid {
		return "NULL", nil
	}
	switch v.Kind {
	case KindNumeric, KindBool:
		return v.Raw, nil
	case KindDate, KindTimestamp:
		return "'" + v.Raw + "'", nil
	case KindText:
		return "'" + escapeText(v.Raw) + "'", nil
	default:
		return "", fmt.Errorf("%w: export value kind %d", rsscripter.ErrCatalogShape, int(v.Kind))
	}
}
