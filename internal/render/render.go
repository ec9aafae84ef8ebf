// Package render turns schema-model nodes into canonical script text.
// Everything here is pure text production: no I/O, no model mutation, and
// deterministic output for identical input graphs.
package render

import (
	"strings"

	"github.com/rsscripter/rsscripter/internal/model"
	"github.com/rsscripter/rsscripter/internal/quoting"
)

// Generated scripts quote identifiers only when they are unsafe to emit bare.
const scriptMode = quoting.WhenNecessary

// q renders a standalone identifier.
func q(name string) string {
	return quoting.Quote(name, scriptMode, false)
}

// qualified renders schema.object.
func qualified(schema, object string) string {
	return quoting.QualifiedName(schema, object, scriptMode)
}

// tableName renders a table's qualified name.
func tableName(t *model.Table) string {
	if t.Schema() == nil {
		return q(t.Name)
	}
	return qualified(t.Schema().Name, t.Name)
}

// viewName renders a view's qualified name.
func viewName(v *model.View) string {
	if v.Schema() == nil {
		return q(v.Name)
	}
	return qualified(v.Schema().Name, v.Name)
}

// escapeText escapes a string for a single-quoted SQL literal.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `''`)
	return s
}
