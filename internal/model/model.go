// Package model holds the in-memory schema object graph the renderer
// consumes: database → schemas → tables/views → columns/constraints, plus
// server-level groups. The graph is populated once per run by the catalog
// reader and treated as immutable afterwards; the renderer never mutates it.
package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rsscripter/rsscripter/pkg/rsscripter"
)

// DistributionStyle is how a table's rows are spread across storage nodes.
type DistributionStyle int

const (
	DistStyleEven DistributionStyle = iota
	DistStyleKey
	DistStyleAll
)

// String returns the catalog name of the distribution style.
func (s DistributionStyle) String() string {
	switch s {
	case DistStyleEven:
		return "EVEN"
	case DistStyleKey:
		return "KEY"
	case DistStyleAll:
		return "ALL"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// ConstraintKind classifies a table constraint.
type ConstraintKind int

const (
	ConstraintPrimaryKey ConstraintKind = iota
	ConstraintUnique
	ConstraintForeignKey
)

// ParseConstraintKind maps a pg_constraint.contype code to a kind.
// An unrecognized code is a fatal catalog-shape error: the renderer has no
// safe fallback and must not guess.
func ParseConstraintKind(code string) (ConstraintKind, error) {
	switch code {
	case "p":
		return ConstraintPrimaryKey, nil
	case "u":
		return ConstraintUnique, nil
	case "f":
		return ConstraintForeignKey, nil
	default:
		return 0, fmt.Errorf("%w: constraint type code %q", rsscripter.ErrCatalogShape, code)
	}
}

// Database is the root of the schema model.
type Database struct {
	Name        string
	Owner       string
	ACL         string
	Description string

	schemas *Set[*Schema]
	groups  *Set[*Group]
}

// NewDatabase creates an empty database node with wired-up collections.
func NewDatabase(name string) *Database {
	d := &Database{Name: name}
	owner := fmt.Sprintf("database %q", name)
	d.schemas = newSet(owner,
		func(s *Schema) error {
			if s.database != nil {
				return ownershipError("schema", s.Name, fmt.Sprintf("database %q", s.database.Name), owner)
			}
			s.database = d
			return nil
		},
		func(s *Schema) { s.database = nil },
	)
	d.groups = newSet(owner,
		func(g *Group) error {
			if g.database != nil {
				return ownershipError("group", g.Name, fmt.Sprintf("database %q", g.database.Name), owner)
			}
			g.database = d
			return nil
		},
		func(g *Group) { g.database = nil },
	)
	return d
}

func (d *Database) ObjectName() string { return d.Name }

// Schemas is the ordered, case-insensitive-unique set of schemas.
func (d *Database) Schemas() *Set[*Schema] { return d.schemas }

// Groups is the flat set of server-level groups.
func (d *Database) Groups() *Set[*Group] { return d.groups }

// Schema is a namespace within a database.
type Schema struct {
	Name        string
	Owner       string
	ACL         string
	Description string

	database *Database
	tables   *Set[*Table]
	views    *Set[*View]
}

// NewSchema creates an empty schema node with wired-up collections.
func NewSchema(name string) *Schema {
	s := &Schema{Name: name}
	owner := fmt.Sprintf("schema %q", name)
	s.tables = newSet(owner,
		func(t *Table) error {
			if t.schema != nil {
				return ownershipError("table", t.Name, fmt.Sprintf("schema %q", t.schema.Name), owner)
			}
			t.schema = s
			return nil
		},
		func(t *Table) { t.schema = nil },
	)
	s.views = newSet(owner,
		func(v *View) error {
			if v.schema != nil {
				return ownershipError("view", v.Name, fmt.Sprintf("schema %q", v.schema.Name), owner)
			}
			v.schema = s
			return nil
		},
		func(v *View) { v.schema = nil },
	)
	return s
}

func (s *Schema) ObjectName() string { return s.Name }

// Database returns the owning database, or nil when detached.
func (s *Schema) Database() *Database { return s.database }

// Tables is the set of tables in this schema.
func (s *Schema) Tables() *Set[*Table] { return s.tables }

// Views is the set of views in this schema.
func (s *Schema) Views() *Set[*View] { return s.views }

// Table is a user table with its columns and constraints.
type Table struct {
	Name          string
	Owner         string
	ACL           string
	Description   string
	DistStyle     DistributionStyle
	EstimatedRows int64

	schema      *Schema
	columns     *Set[*Column]
	constraints *Set[*Constraint]
}

// NewTable creates an empty table node with wired-up collections.
func NewTable(name string) *Table {
	t := &Table{Name: name}
	owner := fmt.Sprintf("table %q", name)
	t.columns = newSet(owner,
		func(c *Column) error {
			if c.parent != nil {
				return ownershipError("column", c.Name, c.parent.parentDesc(), owner)
			}
			c.parent = t
			return nil
		},
		func(c *Column) { c.parent = nil },
	)
	t.constraints = newSet(owner,
		func(c *Constraint) error {
			if c.table != nil {
				return ownershipError("constraint", c.Name, fmt.Sprintf("table %q", c.table.Name), owner)
			}
			c.table = t
			return nil
		},
		func(c *Constraint) { c.table = nil },
	)
	return t
}

func (t *Table) ObjectName() string { return t.Name }

func (t *Table) parentDesc() string { return fmt.Sprintf("table %q", t.Name) }

// Schema returns the owning schema, or nil when detached.
func (t *Table) Schema() *Schema { return t.schema }

// Columns is the ordered set of live columns.
func (t *Table) Columns() *Set[*Column] { return t.columns }

// Constraints is the set of table constraints.
func (t *Table) Constraints() *Set[*Constraint] { return t.constraints }

// DistKeyColumn returns the single distribution-key column when the table
// uses KEY distribution, nil otherwise.
func (t *Table) DistKeyColumn() *Column {
	if t.DistStyle != DistStyleKey {
		return nil
	}
	for _, c := range t.columns.Items() {
		if c.IsDistKey {
			return c
		}
	}
	return nil
}

// PrimaryKey returns the table's primary key constraint, nil if none.
// A table has at most one.
func (t *Table) PrimaryKey() *Constraint {
	for _, c := range t.constraints.Items() {
		if c.Kind == ConstraintPrimaryKey {
			return c
		}
	}
	return nil
}

// UniqueConstraints returns the unique constraints in insertion order.
func (t *Table) UniqueConstraints() []*Constraint {
	return t.constraintsOfKind(ConstraintUnique)
}

// ForeignKeys returns the foreign key constraints in insertion order.
func (t *Table) ForeignKeys() []*Constraint {
	return t.constraintsOfKind(ConstraintForeignKey)
}

func (t *Table) constraintsOfKind(kind ConstraintKind) []*Constraint {
	var out []*Constraint
	for _, c := range t.constraints.Items() {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// SortKeyColumns returns the columns with a positive sort-key ordinal,
// ordered by ascending ordinal regardless of declaration order.
func (t *Table) SortKeyColumns() []*Column {
	var out []*Column
	for _, c := range t.columns.Items() {
		if c.SortKeyOrdinal > 0 {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortKeyOrdinal < out[j].SortKeyOrdinal
	})
	return out
}

// View is a stored SELECT with its output columns.
type View struct {
	Name        string
	Owner       string
	ACL         string
	Description string

	// Definition is the view's SELECT statement as reported by the catalog.
	Definition string

	schema  *Schema
	columns *Set[*Column]
}

// NewView creates an empty view node with a wired-up column collection.
func NewView(name string) *View {
	v := &View{Name: name}
	owner := fmt.Sprintf("view %q", name)
	v.columns = newSet(owner,
		func(c *Column) error {
			if c.parent != nil {
				return ownershipError("column", c.Name, c.parent.parentDesc(), owner)
			}
			c.parent = v
			return nil
		},
		func(c *Column) { c.parent = nil },
	)
	return v
}

func (v *View) ObjectName() string { return v.Name }

func (v *View) parentDesc() string { return fmt.Sprintf("view %q", v.Name) }

// Schema returns the owning schema, or nil when detached.
func (v *View) Schema() *Schema { return v.schema }

// Columns is the ordered set of output columns.
func (v *View) Columns() *Set[*Column] { return v.columns }

// columnParent is the lightweight owner reference a column holds; it exists
// only for lookups and error context, never for ownership.
type columnParent interface {
	parentDesc() string
}

// Column belongs to a table or a view.
type Column struct {
	Name        string
	Description string
	DataType    string
	Nullable    bool

	// Default is the default-value expression, empty when none.
	Default string

	// Encoding is the compression encoding name, empty when none.
	Encoding string

	IsDistKey bool

	// SortKeyOrdinal is the 1-based sort key position; 0 means the column is
	// not part of the sort key.
	SortKeyOrdinal int

	parent columnParent
}

func (c *Column) ObjectName() string { return c.Name }

// HasEncoding reports whether the column carries an explicit compression
// encoding. NONE and RAW are catalog spellings of "no encoding".
func (c *Column) HasEncoding() bool {
	switch strings.ToUpper(c.Encoding) {
	case "", "NONE", "RAW":
		return false
	default:
		return true
	}
}

// Constraint is a primary key, unique or foreign key constraint on a table.
type Constraint struct {
	Name        string
	Description string
	Kind        ConstraintKind

	// Definition is the raw constraint text from the catalog, e.g.
	// "PRIMARY KEY (id)".
	Definition string

	// ColumnPositions holds the participating columns as 1-based catalog
	// column positions. Resolution is positional into the live-column
	// sequence: dropped columns keep their original ordinal slot.
	ColumnPositions []int

	table *Table
}

func (c *Constraint) ObjectName() string { return c.Name }

// Table returns the owning table, or nil when detached.
func (c *Constraint) Table() *Table { return c.table }

// Columns resolves ColumnPositions against the owning table's live columns.
// A position outside the live-column sequence is a catalog-shape error.
func (c *Constraint) Columns() ([]*Column, error) {
	if c.table == nil {
		return nil, fmt.Errorf("constraint %q is not attached to a table", c.Name)
	}
	live := c.table.Columns().Items()
	out := make([]*Column, 0, len(c.ColumnPositions))
	for _, pos := range c.ColumnPositions {
		if pos < 1 || pos > len(live) {
			return nil, fmt.Errorf("%w: constraint %q references column position %d of table %q (%d live columns)",
				rsscripter.ErrCatalogShape, c.Name, pos, c.table.Name, len(live))
		}
		out = append(out, live[pos-1])
	}
	return out, nil
}

// Group is a server-level user group. Groups are modeled for grant rendering
// but not scripted under the database tree by default.
type Group struct {
	Name string

	database *Database
}

func (g *Group) ObjectName() string { return g.Name }
