package rsscripter

import "context"

// Generator is the main interface for producing a script tree from a live
// database. Implementations handle the full workflow: catalog read, script
// rendering, file writing and reconciliation.
type Generator interface {
	// Generate runs one generation pass using the provided configuration.
	// It returns an error if the run fails at any stage.
	Generate(ctx context.Context, config GenerateConfig) error
}
