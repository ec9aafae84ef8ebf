package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsscripter/rsscripter/internal/model"
)

func newMasterFixture(t *testing.T) *model.Database {
	t.Helper()
	db := model.NewDatabase("warehouse")

	public := model.NewSchema("public")
	require.NoError(t, db.Schemas().Add(public))

	orders := model.NewTable("orders")
	orders.EstimatedRows = 10
	require.NoError(t, orders.Columns().Add(&model.Column{Name: "id", DataType: "integer"}))
	require.NoError(t, orders.Constraints().Add(&model.Constraint{
		Name:            "orders_customer_fkey",
		Kind:            model.ConstraintForeignKey,
		Definition:      "FOREIGN KEY (id) REFERENCES public.customers(id)",
		ColumnPositions: []int{1},
	}))
	require.NoError(t, public.Tables().Add(orders))

	v := model.NewView("order_totals")
	require.NoError(t, public.Views().Add(v))
	return db
}

func TestMasterOrdering(t *testing.T) {
	db := newMasterFixture(t)
	hasData := func(tbl *model.Table) bool { return tbl.EstimatedRows > 0 }

	got := Master(db, "run-1", hasData)

	assert.True(t, strings.HasPrefix(got, `\set ON_ERROR_STOP on`+"\n"))
	assert.Contains(t, got, "run-1")

	wantOrder := []string{
		`\i Database.sql`,
		`\i Schemas/Schemas.sql`,
		`\i Schemas/public/Views/Views.sql`,
		`\i Schemas/public/Tables/orders.sql`,
		`\i Schemas/public/Tables/Data/orders.sql`,
		`\i Schemas/public/Views/order_totals.sql`,
		`\i Schemas/public/Tables/orders.fky.sql`,
	}
	last := -1
	for _, directive := range wantOrder {
		idx := strings.Index(got, directive)
		require.GreaterOrEqual(t, idx, 0, directive)
		assert.Greater(t, idx, last, "out of order: %s", directive)
		last = idx
	}
}

func TestMasterSkipsMissingPieces(t *testing.T) {
	db := model.NewDatabase("warehouse")
	s := model.NewSchema("public")
	require.NoError(t, db.Schemas().Add(s))
	tbl := model.NewTable("empty")
	require.NoError(t, s.Tables().Add(tbl))

	got := Master(db, "run-2", func(*model.Table) bool { return false })

	assert.NotContains(t, got, "Views.sql")
	assert.NotContains(t, got, "Data/")
	assert.NotContains(t, got, ".fky.sql")
	assert.Contains(t, got, `\i Schemas/public/Tables/empty.sql`)
}

func TestMasterEchoesProgress(t *testing.T) {
	db := newMasterFixture(t)
	got := Master(db, "run-3", nil)

	assert.Contains(t, got, `\echo Creating database`)
	assert.Contains(t, got, `\echo Creating table public.orders`)
}
