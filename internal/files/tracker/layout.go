// Package tracker writes rendered scripts into the fixed output layout and
// records every path the current run produced. The recorded set is what the
// reconciliation engine compares the real directory tree against.
package tracker

import (
	"path"

	"github.com/rsscripter/rsscripter/pkg/rsscripter"
)

// Layout path builders. All paths are relative to the output root and use
// forward slashes; file names carry the raw (unquoted) object names.

// DatabasePath returns the database bootstrap script path.
func DatabasePath() string { return rsscripter.DatabaseScriptName }

// SchemasScriptPath returns the schema creation script path.
func SchemasScriptPath() string {
	return path.Join(rsscripter.SchemasDirName, rsscripter.SchemasScriptName)
}

// SchemaDir returns the directory for one schema's objects.
func SchemaDir(schema string) string {
	return path.Join(rsscripter.SchemasDirName, schema)
}

// TablePath returns the per-table DDL script path.
func TablePath(schema, table string) string {
	return path.Join(SchemaDir(schema), rsscripter.TablesDirName, table+rsscripter.ScriptExtension)
}

// TableForeignKeysPath returns the per-table foreign key script path.
func TableForeignKeysPath(schema, table string) string {
	return path.Join(SchemaDir(schema), rsscripter.TablesDirName, table+rsscripter.ForeignKeySuffix)
}

// TableDataPath returns the bulk data export script path.
func TableDataPath(schema, table string) string {
	return path.Join(SchemaDir(schema), rsscripter.TablesDirName, rsscripter.DataDirName, table+rsscripter.ScriptExtension)
}

// ViewHeadersPath returns the grouped view header script path for a schema.
func ViewHeadersPath(schema string) string {
	return path.Join(SchemaDir(schema), rsscripter.ViewsDirName, rsscripter.ViewHeadersScriptName)
}

// ViewPath returns the per-view body script path.
func ViewPath(schema, view string) string {
	return path.Join(SchemaDir(schema), rsscripter.ViewsDirName, view+rsscripter.ScriptExtension)
}

// MasterPath returns the master replay script path.
func MasterPath() string { return rsscripter.MasterScriptName }

// IgnoreFilePath returns the persisted ignore list path.
func IgnoreFilePath() string { return rsscripter.IgnoreFileName }
