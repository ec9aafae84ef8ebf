package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsscripter/rsscripter/internal/files/filesystem"
)

func TestLayoutPaths(t *testing.T) {
	assert.Equal(t, "Database.sql", DatabasePath())
	assert.Equal(t, "Schemas/Schemas.sql", SchemasScriptPath())
	assert.Equal(t, "Schemas/sales/Tables/orders.sql", TablePath("sales", "orders"))
	assert.Equal(t, "Schemas/sales/Tables/orders.fky.sql", TableForeignKeysPath("sales", "orders"))
	assert.Equal(t, "Schemas/sales/Tables/Data/orders.sql", TableDataPath("sales", "orders"))
	assert.Equal(t, "Schemas/sales/Views/Views.sql", ViewHeadersPath("sales"))
	assert.Equal(t, "Schemas/sales/Views/order_totals.sql", ViewPath("sales", "order_totals"))
	assert.Equal(t, "CreateDatabaseObjects.sql", MasterPath())
	assert.Equal(t, "IgnoreFiles.txt", IgnoreFilePath())
}

func TestTrackerRecordsAncestors(t *testing.T) {
	tr := NewTracker()
	tr.Record("Schemas/sales/Tables/orders.sql")

	assert.True(t, tr.Contains("Schemas/sales/Tables/orders.sql"))
	assert.True(t, tr.Contains("Schemas/sales/Tables"))
	assert.True(t, tr.Contains("Schemas/sales"))
	assert.True(t, tr.Contains("Schemas"))
	assert.False(t, tr.Contains("Schemas/sales/Views"))
}

func TestTrackerCaseInsensitive(t *testing.T) {
	tr := NewTracker()
	tr.Record("Schemas/Sales/Tables/Orders.sql")

	assert.True(t, tr.Contains("schemas/sales/tables/orders.sql"))
	assert.True(t, tr.Contains("SCHEMAS/SALES"))
}

func TestTrackerNormalizesSeparators(t *testing.T) {
	tr := NewTracker()
	tr.Record(`Schemas\sales\Tables\orders.sql`)

	assert.True(t, tr.Contains("Schemas/sales/Tables/orders.sql"))
}

func TestWriterWritesAndRecords(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/out")
	tr := NewTracker()
	w := NewWriter(fs, "/out", tr)

	err := w.Write(TablePath("sales", "orders"), "CREATE TABLE ...;\n")
	require.NoError(t, err)

	content, err := fs.ReadFile("/out/Schemas/sales/Tables/orders.sql")
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE ...;\n", string(content))

	assert.True(t, tr.Contains("Schemas/sales/Tables/orders.sql"))
	assert.True(t, tr.Contains("Schemas/sales/Tables"))
}

func TestWriterOverwritesExistingFile(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/out")
	fs.AddFile("/out/Database.sql", "old content")
	w := NewWriter(fs, "/out", NewTracker())

	err := w.Write(DatabasePath(), "new content")
	require.NoError(t, err)

	content, err := fs.ReadFile("/out/Database.sql")
	require.NoError(t, err)
	assert.Equal(t, "new content", string(content))
}

func TestNewWriterPanicsOnNilDependencies(t *testing.T) {
	assert.Panics(t, func() {
		NewWriter(nil, "/out", NewTracker())
	})
	assert.Panics(t, func() {
		NewWriter(filesystem.NewMemoryFileSystem("/out"), "/out", nil)
	})
}
