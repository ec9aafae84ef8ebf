package render

import (
	"fmt"
	"strings"

	"github.com/rsscripter/rsscripter/internal/files/tracker"
	"github.com/rsscripter/rsscripter/internal/model"
)

// Master renders the top-level replay script. It includes every generated
// file in dependency order: database, schemas, view headers, tables, table
// data, view bodies, foreign keys. Running it with psql recreates the whole
// database:
//
//	psql -v dbname=mydb -f CreateDatabaseObjects.sql
//
// hasData reports whether a data export script was written for a table.
func Master(db *model.Database, runID string, hasData func(*model.Table) bool) string {
	var b strings.Builder
	b.WriteString(`\set ON_ERROR_STOP on` + "\n")
	fmt.Fprintf(&b, "-- Generated from database %q (run %s)\n", db.Name, runID)
	b.WriteString("\n")

	include(&b, "database", tracker.DatabasePath())
	include(&b, "schemas", tracker.SchemasScriptPath())

	for _, s := range db.Schemas().Items() {
		if s.Views().Len() > 0 {
			include(&b, fmt.Sprintf("view headers for schema %s", s.Name), tracker.ViewHeadersPath(s.Name))
		}
	}
	for _, s := range db.Schemas().Items() {
		for _, t := range s.Tables().Items() {
			include(&b, fmt.Sprintf("table %s.%s", s.Name, t.Name), tracker.TablePath(s.Name, t.Name))
		}
	}
	for _, s := range db.Schemas().Items() {
		for _, t := range s.Tables().Items() {
			if hasData != nil && hasData(t) {
				include(&b, fmt.Sprintf("data for table %s.%s", s.Name, t.Name), tracker.TableDataPath(s.Name, t.Name))
			}
		}
	}
	for _, s := range db.Schemas().Items() {
		for _, v := range s.Views().Items() {
			include(&b, fmt.Sprintf("view %s.%s", s.Name, v.Name), tracker.ViewPath(s.Name, v.Name))
		}
	}
	for _, s := range db.Schemas().Items() {
		for _, t := range s.Tables().Items() {
			if len(t.ForeignKeys()) > 0 {
				include(&b, fmt.Sprintf("foreign keys for table %s.%s", s.Name, t.Name), tracker.TableForeignKeysPath(s.Name, t.Name))
			}
		}
	}
	return b.String()
}

func include(b *strings.Builder, label, relPath string) {
	fmt.Fprintf(b, `\echo Creating %s`+"\n", label)
	fmt.Fprintf(b, `\i %s`+"\n", relPath)
}
