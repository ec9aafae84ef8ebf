package rsscripter

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connector establishes database connections for catalog reading and data
// export.
type Connector interface {
	// Connect establishes a connection pool to the source database.
	//
	// Parameters:
	//   - ctx: context for cancellation and timeout
	//
	// Returns:
	//   - *pgxpool.Pool: the connection pool; the caller owns it and must Close it
	//   - error: connection or configuration failure
	Connect(ctx context.Context) (*pgxpool.Pool, error)
}
