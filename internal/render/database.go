package render

import (
	"strings"

	"github.com/rsscripter/rsscripter/internal/model"
)

// DatabaseNameToken is the psql variable substituted for the database name.
// A connection cannot CREATE DATABASE and simultaneously be inside it, so the
// bootstrap script takes the name as a variable and reconnects:
//
//	psql -v dbname=mydb -f Database.sql
const DatabaseNameToken = `:"dbname"`

// Database renders the database bootstrap script: a CREATE DATABASE
// placeholder using the name token, a reconnect directive, then database
// level comments and grants.
func Database(db *model.Database) string {
	var b strings.Builder
	b.WriteString("CREATE DATABASE ")
	b.WriteString(DatabaseNameToken)
	b.WriteString(";\n")
	b.WriteString(`\connect `)
	b.WriteString(DatabaseNameToken)
	b.WriteString("\n")

	if comment := Comment("DATABASE", DatabaseNameToken, db.Description); comment != "" {
		b.WriteString("\n")
		b.WriteString(comment)
	}
	if grants := Grants(db.ACL, "DATABASE "+DatabaseNameToken); grants != "" {
		b.WriteString("\n")
		b.WriteString(grants)
	}
	return b.String()
}

// Schemas renders the schema creation script. The public schema is special:
// it pre-exists in every new database, so it is never created — and when the
// source database has no public schema, it is dropped so a freshly created
// target matches the source.
func Schemas(db *model.Database) string {
	var b strings.Builder
	hasPublic := false

	for _, s := range db.Schemas().Items() {
		section := schemaSection(s)
		if strings.EqualFold(s.Name, "public") {
			hasPublic = true
		}
		if section == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(section)
	}

	if !hasPublic {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("DROP SCHEMA public;\n")
	}
	return b.String()
}

func schemaSection(s *model.Schema) string {
	var b strings.Builder
	if !strings.EqualFold(s.Name, "public") {
		b.WriteString("CREATE SCHEMA ")
		b.WriteString(q(s.Name))
		if s.Owner != "" {
			b.WriteString(" AUTHORIZATION ")
			b.WriteString(q(s.Owner))
		}
		b.WriteString(";\n")
	}
	b.WriteString(Comment("SCHEMA", q(s.Name), s.Description))
	b.WriteString(Grants(s.ACL, "SCHEMA "+q(s.Name)))
	return b.String()
}
