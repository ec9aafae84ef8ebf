package render

import (
	"strings"

	"github.com/rsscripter/rsscripter/internal/model"
)

// ViewHeader renders the placeholder form of a view: a SELECT of typed NULLs
// with the view's real output shape. Creating every header before any body
// lets circular and forward view dependencies resolve — headers depend on
// nothing.
func ViewHeader(v *model.View) string {
	var b strings.Builder
	b.WriteString("CREATE OR REPLACE VIEW ")
	b.WriteString(viewName(v))
	b.WriteString(" AS\nSELECT\n")

	cols := v.Columns().Items()
	for i, c := range cols {
		b.WriteString("\tNULL::")
		b.WriteString(c.DataType)
		b.WriteString(" AS ")
		b.WriteString(q(c.Name))
		if i < len(cols)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(";\n")
	return b.String()
}

// ViewHeaders renders the grouped header file for every view in a schema,
// in insertion order. Returns the empty string for schemas without views.
func ViewHeaders(s *model.Schema) string {
	views := s.Views().Items()
	if len(views) == 0 {
		return ""
	}
	var b strings.Builder
	for i, v := range views {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(ViewHeader(v))
	}
	return b.String()
}

// ViewBody renders the real view definition plus comments and grants.
func ViewBody(v *model.View) string {
	name := viewName(v)

	var b strings.Builder
	b.WriteString("CREATE OR REPLACE VIEW ")
	b.WriteString(name)
	b.WriteString(" AS\n")
	b.WriteString(strings.TrimRight(v.Definition, " \t\n"))
	if !strings.HasSuffix(strings.TrimSpace(v.Definition), ";") {
		b.WriteString("\n;")
	}
	b.WriteString("\n")

	if comment := Comment("VIEW", name, v.Description); comment != "" {
		b.WriteString("\n")
		b.WriteString(comment)
	}
	var colComments strings.Builder
	for _, c := range v.Columns().Items() {
		colComments.WriteString(Comment("COLUMN", name+"."+q(c.Name), c.Description))
	}
	if colComments.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(colComments.String())
	}
	if grants := Grants(v.ACL, name); grants != "" {
		b.WriteString("\n")
		b.WriteString(grants)
	}
	return b.String()
}
