package rsscripter

// Exit codes. The CLI contract is deliberately narrow: anything that stops
// the run maps to a general failure, argument problems included.
const (
	ExitSuccess      = 0 // Generation completed and the tree is reconciled
	ExitGeneralError = 1 // Argument error or any fatal failure during the run
	ExitPanic        = 3 // Internal panic (unexpected crash)
)

// Script tree layout, relative to the output root.
const (
	// DatabaseScriptName holds the CREATE DATABASE placeholder and the
	// reconnect directive.
	DatabaseScriptName = "Database.sql"

	// SchemasDirName is the directory containing one subdirectory per schema.
	SchemasDirName = "Schemas"

	// SchemasScriptName creates every schema (Schemas/Schemas.sql).
	SchemasScriptName = "Schemas.sql"

	// TablesDirName holds per-table DDL scripts within a schema directory.
	TablesDirName = "Tables"

	// DataDirName holds bulk data export scripts within a Tables directory.
	DataDirName = "Data"

	// ViewsDirName holds view scripts within a schema directory.
	ViewsDirName = "Views"

	// ViewHeadersScriptName groups the placeholder headers for every view in
	// a schema (Schemas/<schema>/Views/Views.sql).
	ViewHeadersScriptName = "Views.sql"

	// ForeignKeySuffix names the per-table foreign key script
	// (<table>.fky.sql) so FKs can be applied after all tables exist.
	ForeignKeySuffix = ".fky.sql"

	// MasterScriptName replays every generated file in dependency order.
	MasterScriptName = "CreateDatabaseObjects.sql"

	// IgnoreFileName is the persisted reconciliation ignore list.
	IgnoreFileName = "IgnoreFiles.txt"

	// ScriptExtension is the only extension reconciliation treats as
	// generated output.
	ScriptExtension = ".sql"
)

// Data export limits.
const (
	// DefaultMaxExportRows is the row-count ceiling above which a table's
	// data export is skipped with a warning.
	DefaultMaxExportRows = 10000

	// MaxBatchRows caps the number of rows rendered into one INSERT statement.
	MaxBatchRows = 1000

	// BatchChecksumModulus and BatchChecksumBoundary define the
	// pseudo-random batch boundary: a row whose checksum satisfies
	// sum % BatchChecksumModulus == BatchChecksumBoundary closes its batch.
	BatchChecksumModulus = 511
	BatchChecksumBoundary = 510
)
