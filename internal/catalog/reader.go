package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rsscripter/rsscripter/internal/model"
	"github.com/rsscripter/rsscripter/pkg/rsscripter"
)

// Reader populates the schema model from the source database's catalog.
// Queries run strictly sequentially; each object kind completes fully before
// the next begins.
type Reader struct {
	pool   *pgxpool.Pool
	logger rsscripter.Logger
}

// NewReader creates a catalog reader.
//
// Parameters:
//   - pool: the source database connection pool (must not be nil)
//   - logger: the message sink (must not be nil)
func NewReader(pool *pgxpool.Pool, logger rsscripter.Logger) *Reader {
	if pool == nil {
		panic("catalog: connection pool cannot be nil")
	}
	if logger == nil {
		panic("catalog: logger cannot be nil")
	}
	return &Reader{pool: pool, logger: logger}
}

// Read builds the complete schema model for the connected database.
func (r *Reader) Read(ctx context.Context) (*model.Database, error) {
	db, err := r.readDatabase(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.readGroups(ctx, db); err != nil {
		return nil, err
	}
	if err := r.readSchemas(ctx, db); err != nil {
		return nil, err
	}
	if err := r.readTables(ctx, db); err != nil {
		return nil, err
	}
	if err := r.readViews(ctx, db); err != nil {
		return nil, err
	}
	if err := r.readColumns(ctx, db); err != nil {
		return nil, err
	}
	if err := r.readConstraints(ctx, db); err != nil {
		return nil, err
	}
	r.logger.Verbose("catalog read complete: %d schemas, %d groups", db.Schemas().Len(), db.Groups().Len())
	return db, nil
}

func (r *Reader) readDatabase(ctx context.Context) (*model.Database, error) {
	var name, owner, acl, description string
	row := r.pool.QueryRow(ctx, databaseQuery)
	if err := row.Scan(&name, &owner, &acl, &description); err != nil {
		return nil, fmt.Errorf("failed to read database entry: %w", err)
	}
	db := model.NewDatabase(name)
	db.Owner = owner
	db.ACL = acl
	db.Description = description
	return db, nil
}

func (r *Reader) readGroups(ctx context.Context, db *model.Database) error {
	rows, err := r.pool.Query(ctx, groupsQuery)
	if err != nil {
		return fmt.Errorf("failed to read groups: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("failed to scan group: %w", err)
		}
		if err := db.Groups().Add(&model.Group{Name: name}); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *Reader) readSchemas(ctx context.Context, db *model.Database) error {
	rows, err := r.pool.Query(ctx, schemasQuery)
	if err != nil {
		return fmt.Errorf("failed to read schemas: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, owner, acl, description string
		if err := rows.Scan(&name, &owner, &acl, &description); err != nil {
			return fmt.Errorf("failed to scan schema: %w", err)
		}
		s := model.NewSchema(name)
		s.Owner = owner
		s.ACL = acl
		s.Description = description
		if err := db.Schemas().Add(s); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *Reader) readTables(ctx context.Context, db *model.Database) error {
	rows, err := r.pool.Query(ctx, tablesQuery)
	if err != nil {
		return fmt.Errorf("failed to read tables: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var schemaName, name, owner, acl, description string
		var distStyle int
		var estimatedRows int64
		if err := rows.Scan(&schemaName, &name, &owner, &acl, &description, &distStyle, &estimatedRows); err != nil {
			return fmt.Errorf("failed to scan table: %w", err)
		}
		s, ok := db.Schemas().Get(schemaName)
		if !ok {
			return fmt.Errorf("%w: table %q references unknown schema %q", rsscripter.ErrCatalogShape, name, schemaName)
		}
		t := model.NewTable(name)
		t.Owner = owner
		t.ACL = acl
		t.Description = description
		t.EstimatedRows = estimatedRows
		t.DistStyle, err = parseDistStyle(distStyle)
		if err != nil {
			return fmt.Errorf("table %s.%s: %w", schemaName, name, err)
		}
		if err := s.Tables().Add(t); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *Reader) readViews(ctx context.Context, db *model.Database) error {
	rows, err := r.pool.Query(ctx, viewsQuery)
	if err != nil {
		return fmt.Errorf("failed to read views: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var schemaName, name, owner, acl, description, definition string
		if err := rows.Scan(&schemaName, &name, &owner, &acl, &description, &definition); err != nil {
			return fmt.Errorf("failed to scan view: %w", err)
		}
		s, ok := db.Schemas().Get(schemaName)
		if !ok {
			return fmt.Errorf("%w: view %q references unknown schema %q", rsscripter.ErrCatalogShape, name, schemaName)
		}
		v := model.NewView(name)
		v.Owner = owner
		v.ACL = acl
		v.Description = description
		v.Definition = definition
		if err := s.Views().Add(v); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *Reader) readColumns(ctx context.Context, db *model.Database) error {
	rows, err := r.pool.Query(ctx, columnsQuery)
	if err != nil {
		return fmt.Errorf("failed to read columns: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var schemaName, relName, name, dataType, defaultExpr, encoding, description string
		var nullable, isDistKey bool
		var sortKeyOrdinal int
		if err := rows.Scan(&schemaName, &relName, &name, &dataType, &nullable,
			&defaultExpr, &encoding, &isDistKey, &sortKeyOrdinal, &description); err != nil {
			return fmt.Errorf("failed to scan column: %w", err)
		}
		s, ok := db.Schemas().Get(schemaName)
		if !ok {
			return fmt.Errorf("%w: column %q references unknown schema %q", rsscripter.ErrCatalogShape, name, schemaName)
		}
		c := &model.Column{
			Name:           name,
			DataType:       dataType,
			Nullable:       nullable,
			Default:        defaultExpr,
			Encoding:       encoding,
			IsDistKey:      isDistKey,
			SortKeyOrdinal: sortKeyOrdinal,
			Description:    description,
		}
		if t, ok := s.Tables().Get(relName); ok {
			if err := t.Columns().Add(c); err != nil {
				return err
			}
			continue
		}
		if v, ok := s.Views().Get(relName); ok {
			if err := v.Columns().Add(c); err != nil {
				return err
			}
			continue
		}
		return fmt.Errorf("%w: column %q references unknown relation %s.%s",
			rsscripter.ErrCatalogShape, name, schemaName, relName)
	}
	return rows.Err()
}

func (r *Reader) readConstraints(ctx context.Context, db *model.Database) error {
	rows, err := r.pool.Query(ctx, constraintsQuery)
	if err != nil {
		return fmt.Errorf("failed to read constraints: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var schemaName, tableName, name, typeCode, definition, positions, description string
		if err := rows.Scan(&schemaName, &tableName, &name, &typeCode, &definition, &positions, &description); err != nil {
			return fmt.Errorf("failed to scan constraint: %w", err)
		}
		s, ok := db.Schemas().Get(schemaName)
		if !ok {
			return fmt.Errorf("%w: constraint %q references unknown schema %q", rsscripter.ErrCatalogShape, name, schemaName)
		}
		t, ok := s.Tables().Get(tableName)
		if !ok {
			return fmt.Errorf("%w: constraint %q references unknown table %s.%s",
				rsscripter.ErrCatalogShape, name, schemaName, tableName)
		}
		kind, err := model.ParseConstraintKind(typeCode)
		if err != nil {
			return fmt.Errorf("constraint %s on %s.%s: %w", name, schemaName, tableName, err)
		}
		cols, err := parseColumnPositions(positions)
		if err != nil {
			return fmt.Errorf("constraint %s on %s.%s: %w", name, schemaName, tableName, err)
		}
		c := &model.Constraint{
			Name:            name,
			Kind:            kind,
			Definition:      definition,
			ColumnPositions: cols,
			Description:     description,
		}
		if err := t.Constraints().Add(c); err != nil {
			return err
		}
	}
	return rows.Err()
}

// parseDistStyle maps pg_class.reldiststyle codes to distribution styles.
func parseDistStyle(code int) (model.DistributionStyle, error) {
	switch code {
	case 0:
		return model.DistStyleEven, nil
	case 1:
		return model.DistStyleKey, nil
	case 8:
		return model.DistStyleAll, nil
	default:
		return 0, fmt.Errorf("%w: distribution style code %d", rsscripter.ErrCatalogShape, code)
	}
}

// parseColumnPositions parses a comma-separated conkey flattening into
// 1-based column positions.
func parseColumnPositions(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		pos, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: constraint column position %q", rsscripter.ErrCatalogShape, p)
		}
		out = append(out, pos)
	}
	return out, nil
}
