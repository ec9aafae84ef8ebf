// Package services contains the generation orchestrator: catalog read,
// script rendering, file writing and reconciliation, in that order.
package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rsscripter/rsscripter/internal/catalog"
	"github.com/rsscripter/rsscripter/internal/db"
	"github.com/rsscripter/rsscripter/internal/files/filesystem"
	"github.com/rsscripter/rsscripter/internal/files/tracker"
	"github.com/rsscripter/rsscripter/internal/model"
	"github.com/rsscripter/rsscripter/internal/reconcile"
	"github.com/rsscripter/rsscripter/internal/render"
	"github.com/rsscripter/rsscripter/pkg/rsscripter"
)

// CatalogReader reads the source catalog into the schema model.
type CatalogReader interface {
	Read(ctx context.Context) (*model.Database, error)
}

// DataExporter writes one table's batched INSERT script.
type DataExporter interface {
	Export(ctx context.Context, w io.Writer, t *model.Table, maxRows int64) error
}

// ConnectorFactory builds a connector for parsed connection parameters.
type ConnectorFactory func(config *rsscripter.ConnectionConfig) rsscripter.Connector

// SourceFactory builds the catalog reader and data exporter over an
// established connection pool.
type SourceFactory func(pool *pgxpool.Pool, logger rsscripter.Logger) (CatalogReader, DataExporter)

// DefaultConnectorFactory connects with standard username/password auth.
func DefaultConnectorFactory(config *rsscripter.ConnectionConfig) rsscripter.Connector {
	return db.NewStandardConnector(config)
}

// DefaultSourceFactory reads and exports through the live catalog.
func DefaultSourceFactory(pool *pgxpool.Pool, logger rsscripter.Logger) (CatalogReader, DataExporter) {
	return catalog.NewReader(pool, logger), catalog.NewExporter(pool)
}

// GenerateService implements the Generator interface. A single instance is
// NOT safe for concurrent Generate calls.
type GenerateService struct {
	connectors ConnectorFactory
	sources    SourceFactory
	fs         filesystem.Provider
	policy     rsscripter.ReconcilePolicy
	logger     rsscripter.Logger
}

// NewGenerateService creates a new GenerateService with injected dependencies.
//
// Parameters:
//   - connectors: connector factory (must not be nil)
//   - sources: catalog reader/exporter factory (must not be nil)
//   - fs: filesystem provider (must not be nil)
//   - policy: reconciliation decision policy (must not be nil)
//   - logger: message sink (must not be nil)
func NewGenerateService(connectors ConnectorFactory, sources SourceFactory, fs filesystem.Provider, policy rsscripter.ReconcilePolicy, logger rsscripter.Logger) *GenerateService {
	if connectors == nil {
		panic("services: connector factory cannot be nil")
	}
	if sources == nil {
		panic("services: source factory cannot be nil")
	}
	if fs == nil {
		panic("services: filesystem provider cannot be nil")
	}
	if policy == nil {
		panic("services: reconcile policy cannot be nil")
	}
	if logger == nil {
		panic("services: logger cannot be nil")
	}
	return &GenerateService{
		connectors: connectors,
		sources:    sources,
		fs:         fs,
		policy:     policy,
		logger:     logger,
	}
}

// Generate runs one generation pass: connect, read the catalog, write every
// script, then reconcile the output tree.
func (s *GenerateService) Generate(ctx context.Context, config rsscripter.GenerateConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if config.MaxExportRows == 0 {
		config.MaxExportRows = rsscripter.DefaultMaxExportRows
	}
	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	connConfig, err := db.ParseConnectionString(config.ConnectionString)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	s.logger.Info("generating scripts for database %q into %s (run %s)", connConfig.Database, config.OutputDir, runID)

	pool, err := s.connectors(connConfig).Connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if pool != nil {
			pool.Close()
		}
	}()

	reader, exporter := s.sources(pool, s.logger)
	database, err := reader.Read(ctx)
	if err != nil {
		return err
	}

	run := &generationRun{
		service:  s,
		config:   config,
		exporter: exporter,
		writer:   tracker.NewWriter(s.fs, config.OutputDir, tracker.NewTracker()),
		hasData:  make(map[*model.Table]bool),
	}
	if err := run.writeScripts(ctx, database, runID); err != nil {
		return err
	}

	reconciler := reconcile.NewReconciler(s.fs, run.writer.Tracker(), s.policy, s.logger)
	if err := reconciler.Run(ctx, config.OutputDir); err != nil {
		return err
	}

	s.logger.Info("generation complete: %d files written", run.filesWritten)
	return nil
}

// generationRun carries the per-run state so GenerateService itself stays
// stateless between calls.
type generationRun struct {
	service      *GenerateService
	config       rsscripter.GenerateConfig
	exporter     DataExporter
	writer       *tracker.Writer
	hasData      map[*model.Table]bool
	filesWritten int
}

func (r *generationRun) write(relPath, content string) error {
	r.service.logger.Verbose("writing %s", relPath)
	if err := r.writer.Write(relPath, content); err != nil {
		return err
	}
	r.filesWritten++
	return nil
}

func (r *generationRun) writeScripts(ctx context.Context, database *model.Database, runID string) error {
	if err := r.write(tracker.DatabasePath(), render.Database(database)); err != nil {
		return err
	}
	if err := r.write(tracker.SchemasScriptPath(), render.Schemas(database)); err != nil {
		return err
	}

	for _, schema := range database.Schemas().Items() {
		if err := r.writeSchema(ctx, schema); err != nil {
			return err
		}
	}

	master := render.Master(database, runID, func(t *model.Table) bool { return r.hasData[t] })
	return r.write(tracker.MasterPath(), master)
}

func (r *generationRun) writeSchema(ctx context.Context, schema *model.Schema) error {
	if headers := render.ViewHeaders(schema); headers != "" {
		if err := r.write(tracker.ViewHeadersPath(schema.Name), headers); err != nil {
			return err
		}
	}

	for _, t := range schema.Tables().Items() {
		ddl, err := render.TableDDL(t)
		if err != nil {
			return err
		}
		if err := r.write(tracker.TablePath(schema.Name, t.Name), ddl); err != nil {
			return err
		}
		if fks := render.TableForeignKeys(t); fks != "" {
			if err := r.write(tracker.TableForeignKeysPath(schema.Name, t.Name), fks); err != nil {
				return err
			}
		}
		if err := r.writeTableData(ctx, schema, t); err != nil {
			return err
		}
	}

	for _, v := range schema.Views().Items() {
		if err := r.write(tracker.ViewPath(schema.Name, v.Name), render.ViewBody(v)); err != nil {
			return err
		}
	}
	return nil
}

func (r *generationRun) writeTableData(ctx context.Context, schema *model.Schema, t *model.Table) error {
	if t.EstimatedRows == 0 {
		r.service.logger.Verbose("no data export for empty table %s.%s", schema.Name, t.Name)
		return nil
	}
	if t.EstimatedRows > r.config.MaxExportRows {
		r.service.logger.Warn("skipping data for %s.%s: %v", schema.Name, t.Name,
			fmt.Errorf("%w: ~%d rows, limit %d", rsscripter.ErrRowLimitExceeded, t.EstimatedRows, r.config.MaxExportRows))
		return nil
	}

	var script strings.Builder
	if err := r.exporter.Export(ctx, &script, t, r.config.MaxExportRows); err != nil {
		return err
	}
	if err := r.write(tracker.TableDataPath(schema.Name, t.Name), script.String()); err != nil {
		return err
	}
	r.hasData[t] = true
	return nil
}

// Verify GenerateService implements the Generator interface at compile time
var _ rsscripter.Generator = (*GenerateService)(nil)
