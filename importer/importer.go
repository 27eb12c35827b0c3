package importer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sakthirv/portfolio-backend/errs"
	"github.com/sakthirv/portfolio-backend/models"
)

// ProjectStore is the persistence surface the import pipeline needs.
// *database.ProjectRepo satisfies it; tests substitute an in-memory fake.
type ProjectStore interface {
	FindBySource(platform, externalID string) (*models.Project, error)
	Add(project *models.Project) error
}

// Request describes one platform import: the submitted URL plus optional
// category and featured overrides.
type Request struct {
	Platform  Platform
	SourceURL string
	Category  string
	Featured  bool
}

// Importer runs the import pipeline: extract the external identifier, guard
// against duplicate ingestion, fetch metadata, build the embed fragment, and
// persist the canonical project. Each request runs the stages sequentially;
// nothing is persisted on any failure path and no stage retries.
type Importer struct {
	store        ProjectStore
	fetchers     map[Platform]MetadataFetcher
	fetchTimeout time.Duration
	logger       zerolog.Logger
}

func New(store ProjectStore, fetchTimeout time.Duration, fetchers ...MetadataFetcher) *Importer {
	byPlatform := make(map[Platform]MetadataFetcher, len(fetchers))
	for _, fetcher := range fetchers {
		byPlatform[fetcher.Platform()] = fetcher
	}

	return &Importer{
		store:        store,
		fetchers:     byPlatform,
		fetchTimeout: fetchTimeout,
		logger:       log.With().Str("component", "importer").Logger(),
	}
}

// Import runs the fetch-based pipeline for one platform URL and returns the
// created project.
func (i *Importer) Import(ctx context.Context, req Request) (*models.Project, error) {
	if req.SourceURL == "" {
		return nil, errs.NewMissingRequiredFieldError("sourceUrl")
	}

	fetcher, ok := i.fetchers[req.Platform]
	if !ok {
		return nil, errs.NewUnsupportedPlatformError(req.Platform.String())
	}

	externalID, err := ExtractExternalID(req.Platform, req.SourceURL)
	if err != nil {
		return nil, err
	}

	existing, err := i.store.FindBySource(req.Platform.String(), externalID)
	if err != nil {
		return nil, errs.NewDatabaseError("check existing import", "project", err)
	}
	if existing != nil {
		return nil, errs.NewDuplicateImportError(req.Platform.String(), externalID)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, i.fetchTimeout)
	defer cancel()

	meta, err := fetcher.FetchMetadata(fetchCtx, externalID)
	if err != nil {
		i.logger.Error().Err(err).
			Str("platform", req.Platform.String()).
			Str("externalId", externalID).
			Msg("Metadata fetch failed")
		return nil, err
	}

	project := i.assembleProject(req, externalID, meta)

	if err := i.store.Add(project); err != nil {
		// The unique index on (imported_from, external_id) is the
		// authoritative dedup signal: a concurrent import for the same URL
		// can pass the pre-check above and lose the race here.
		if errs.IsDuplicateKey(err) {
			return nil, errs.NewDuplicateImportError(req.Platform.String(), externalID)
		}
		return nil, errs.NewPersistenceError(err)
	}

	i.logger.Info().
		Str("platform", req.Platform.String()).
		Str("externalId", externalID).
		Str("title", project.Title).
		Msg("Project imported")

	return project, nil
}

// ImportManual persists a caller-supplied project payload as a manual
// import. Manual imports carry no external identifier and are exempt from
// the dedup guard.
func (i *Importer) ImportManual(ctx context.Context, project *models.Project) (*models.Project, error) {
	switch {
	case project == nil:
		return nil, errs.NewMissingRequiredFieldError("project")
	case project.Title == "":
		return nil, errs.NewMissingRequiredFieldError("title")
	case project.Description == "":
		return nil, errs.NewMissingRequiredFieldError("description")
	case project.Category == "":
		return nil, errs.NewMissingRequiredFieldError("category")
	}

	importedFrom := models.ImportedFromManual
	project.ImportedFrom = &importedFrom
	project.ExternalID = nil

	if err := i.store.Add(project); err != nil {
		return nil, errs.NewPersistenceError(err)
	}

	i.logger.Info().Str("title", project.Title).Msg("Manual project imported")

	return project, nil
}

// assembleProject maps normalized metadata onto the canonical project
// record, filling platform fallbacks where the upstream response carried
// nothing.
func (i *Importer) assembleProject(req Request, externalID string, meta *Metadata) *models.Project {
	importedFrom := req.Platform.String()
	sourceURL := req.SourceURL

	project := &models.Project{
		Title:        meta.Title,
		Description:  meta.Description,
		Category:     req.Category,
		Images:       meta.Images,
		Technologies: meta.Technologies,
		ProjectURL:   &sourceURL,
		Featured:     req.Featured,
		ImportedFrom: &importedFrom,
		ExternalID:   &externalID,
		ExternalURL:  &sourceURL,
		ImportData:   meta.Raw,
	}

	if project.Description == "" {
		project.Description = req.Platform.DefaultDescription()
	}
	if project.Category == "" {
		project.Category = req.Platform.DefaultCategory()
	}
	if len(project.Technologies) == 0 {
		project.Technologies = req.Platform.DefaultTechnologies()
	}
	if len(project.ImportData) == 0 {
		if raw, err := json.Marshal(meta); err == nil {
			project.ImportData = raw
		}
	}

	project.DemoEmbed = BuildEmbed(req.Platform, externalID)

	return project
}
