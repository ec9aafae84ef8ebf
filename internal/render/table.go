package render

import (
	"fmt"
	"strings"

	"github.com/rsscripter/rsscripter/internal/model"
)

// TableDDL renders the complete per-table script: CREATE TABLE with column
// definitions and distribution/sort clauses, followed by primary key and
// unique constraints as separate ALTER TABLE statements, comments and grants.
// Foreign keys are NOT included here; see TableForeignKeys.
func TableDDL(t *model.Table) (string, error) {
	name := tableName(t)

	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(name)
	b.WriteString("\n(\n")

	cols := t.Columns().Items()
	for i, c := range cols {
		b.WriteString("\t")
		b.WriteString(columnDefinition(c))
		if i < len(cols)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(")\n")

	switch t.DistStyle {
	case model.DistStyleAll:
		b.WriteString("DISTSTYLE ALL\n")
	case model.DistStyleKey:
		dk := t.DistKeyColumn()
		if dk == nil {
			return "", fmt.Errorf("table %s has KEY distribution but no distribution key column", name)
		}
		b.WriteString("DISTKEY(")
		b.WriteString(q(dk.Name))
		b.WriteString(")\n")
	case model.DistStyleEven:
		// EVEN is the engine default; emitting nothing keeps scripts minimal.
	}

	if sortCols := t.SortKeyColumns(); len(sortCols) > 0 {
		names := make([]string, len(sortCols))
		for i, c := range sortCols {
			names[i] = q(c.Name)
		}
		b.WriteString("SORTKEY(")
		b.WriteString(strings.Join(names, ", "))
		b.WriteString(")\n")
	}
	b.WriteString(";\n")

	for _, c := range t.Constraints().Items() {
		if c.Kind == model.ConstraintForeignKey {
			continue
		}
		b.WriteString("\n")
		b.WriteString(constraintStatement(t, c))
	}

	appendObjectComments(&b, t)
	if grants := Grants(t.ACL, name); grants != "" {
		b.WriteString("\n")
		b.WriteString(grants)
	}

	return b.String(), nil
}

// TableForeignKeys renders the per-table foreign key script, applied after
// every table exists so references never point forward. Returns the empty
// string for tables without foreign keys.
func TableForeignKeys(t *model.Table) string {
	fks := t.ForeignKeys()
	if len(fks) == 0 {
		return ""
	}
	var b strings.Builder
	for i, c := range fks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(constraintStatement(t, c))
	}
	return b.String()
}

// columnDefinition renders one column as
// name, type, nullability, then optional DEFAULT and ENCODE, tab-separated.
func columnDefinition(c *model.Column) string {
	parts := []string{q(c.Name), c.DataType}
	if c.Nullable {
		parts = append(parts, "NULL")
	} else {
		parts = append(parts, "NOT NULL")
	}
	if c.Default != "" {
		parts = append(parts, "DEFAULT "+c.Default)
	}
	if c.HasEncoding() {
		parts = append(parts, "ENCODE "+c.Encoding)
	}
	return strings.Join(parts, "\t")
}

func constraintStatement(t *model.Table, c *model.Constraint) string {
	return fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s;\n", tableName(t), q(c.Name), c.Definition)
}

func appendObjectComments(b *strings.Builder, t *model.Table) {
	name := tableName(t)
	if comment := Comment("TABLE", name, t.Description); comment != "" {
		b.WriteString("\n")
		b.WriteString(comment)
	}
	var colComments strings.Builder
	for _, c := range t.Columns().Items() {
		colComments.WriteString(Comment("COLUMN", name+"."+q(c.Name), c.Description))
	}
	if colComments.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(colComments.String())
	}
}
