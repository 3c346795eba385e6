package integrity

import (
	"context"
	"path/filepath"

	"brick-validator/core/manifest"
	"brick-validator/core/parquet"
	"brick-validator/core/report"
	"brick-validator/feature/integrity/checks"

	"go.uber.org/zap"
)

// Service runs the full validation pipeline for one brick repository.
type Service struct {
	repoPath  string
	cfg       manifest.Config
	inspector parquet.Inspector
	logger    *zap.Logger
}

// NewService creates a new integrity service.
func NewService(repoPath string, cfg manifest.Config, inspector parquet.Inspector, logger *zap.Logger) *Service {
	return &Service{
		repoPath:  repoPath,
		cfg:       cfg,
		inspector: inspector,
		logger:    logger,
	}
}

// Run executes the two-phase pipeline and returns the report. Phase 1
// is the structural gate: manifest existence, parse, top-level shape,
// and brick directory, each short-circuiting the run. Phase 2
// accumulates: entry shape, file existence, per-extension set
// reconciliation, and per-asset schema reconciliation. Run never fails
// as a whole; every problem ends up in the report.
func (s *Service) Run(ctx context.Context) *report.Report {
	rep := report.New()

	manifestPath := filepath.Join(s.repoPath, s.cfg.File)
	brickDir := filepath.Join(s.repoPath, s.cfg.Dir)

	s.logger.Info("Validating brick metadata",
		zap.String("repo", s.repoPath),
		zap.String("manifest", manifestPath))

	m, ok := manifest.Load(manifestPath, rep)
	if !ok {
		return rep
	}

	if !checks.CheckBrickDir(brickDir, rep) {
		return rep
	}

	// Entry problems accumulate; the run continues to directory and
	// set checks regardless, and invalid entries are skipped below.
	m.ValidateEntries(rep)

	present := checks.CheckAssetFiles(brickDir, m.Paths(), rep)
	if err := checks.CheckAssetSets(brickDir, m.Paths(), rep); err != nil {
		s.logger.Error("Asset set reconciliation failed", zap.Error(err))
	}

	for _, assetPath := range m.Paths() {
		if ctx.Err() != nil {
			s.logger.Warn("Validation interrupted", zap.Error(ctx.Err()))
			break
		}

		// Missing files are already reported; nothing to introspect.
		if !present[assetPath] {
			continue
		}

		asset := m.Assets[assetPath]
		// The entry's structural error stands in for schema validation.
		if asset.Schema == "" {
			continue
		}

		fullPath := filepath.Join(brickDir, assetPath)
		switch manifest.ExtensionOf(assetPath) {
		case manifest.ExtParquet:
			s.logger.Debug("Reconciling parquet schema", zap.String("asset", assetPath))
			checks.CheckParquetSchema(assetPath, asset.Schema, fullPath, s.inspector, rep)
		case manifest.ExtSQLite:
			s.logger.Debug("Reconciling SQLite schema", zap.String("asset", assetPath))
			checks.CheckSQLiteSchema(assetPath, asset.Schema, fullPath, rep)
		}
	}

	return rep
}
