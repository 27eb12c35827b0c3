package importer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakthirv/portfolio-backend/errs"
	"github.com/sakthirv/portfolio-backend/models"
)

// fakeStore is an in-memory ProjectStore that enforces the
// (imported_from, external_id) uniqueness the real database index provides.
type fakeStore struct {
	projects  []*models.Project
	addErr    error
	findCalls int
	addCalls  int
}

func (s *fakeStore) FindBySource(platform, externalID string) (*models.Project, error) {
	s.findCalls++
	for _, p := range s.projects {
		if p.ImportedFrom != nil && *p.ImportedFrom == platform &&
			p.ExternalID != nil && *p.ExternalID == externalID {
			return p, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) Add(project *models.Project) error {
	s.addCalls++
	if s.addErr != nil {
		return s.addErr
	}
	if project.ImportedFrom != nil && project.ExternalID != nil {
		for _, p := range s.projects {
			if p.ImportedFrom != nil && *p.ImportedFrom == *project.ImportedFrom &&
				p.ExternalID != nil && *p.ExternalID == *project.ExternalID {
				return errors.New(`duplicate key value violates unique constraint "idx_project_import_source"`)
			}
		}
	}
	s.projects = append(s.projects, project)
	return nil
}

func (s *fakeStore) countBySource(platform, externalID string) int {
	count := 0
	for _, p := range s.projects {
		if p.ImportedFrom != nil && *p.ImportedFrom == platform &&
			p.ExternalID != nil && *p.ExternalID == externalID {
			count++
		}
	}
	return count
}

// fakeFetcher returns canned metadata for any identifier.
type fakeFetcher struct {
	platform Platform
	meta     *Metadata
	err      error
	calls    int
}

func (f *fakeFetcher) Platform() Platform {
	return f.platform
}

func (f *fakeFetcher) FetchMetadata(ctx context.Context, externalID string) (*Metadata, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.meta, nil
}

func newTestImporter(store *fakeStore, fetchers ...MetadataFetcher) *Importer {
	return New(store, 5*time.Second, fetchers...)
}

func TestImportSketchfabSuccess(t *testing.T) {
	raw := json.RawMessage(`{"uid":"abc123","name":"Spooky House","viewCount":42}`)
	store := &fakeStore{}
	fetcher := &fakeFetcher{
		platform: PlatformSketchfab,
		meta: &Metadata{
			Title:       "Spooky House",
			Description: "A haunted house model",
			Raw:         raw,
		},
	}

	imp := newTestImporter(store, fetcher)
	project, err := imp.Import(context.Background(), Request{
		Platform:  PlatformSketchfab,
		SourceURL: "https://sketchfab.com/3d-models/abc123",
		Featured:  true,
	})
	require.NoError(t, err)
	require.NotNil(t, project)

	assert.Equal(t, "Spooky House", project.Title)
	assert.Equal(t, "A haunted house model", project.Description)
	require.NotNil(t, project.ImportedFrom)
	assert.Equal(t, models.ImportedFromSketchfab, *project.ImportedFrom)
	require.NotNil(t, project.ExternalID)
	assert.Equal(t, "abc123", *project.ExternalID)
	require.NotNil(t, project.ExternalURL)
	assert.Equal(t, "https://sketchfab.com/3d-models/abc123", *project.ExternalURL)
	assert.True(t, project.Featured)

	require.NotNil(t, project.DemoEmbed)
	assert.Contains(t, *project.DemoEmbed, "abc123")

	// importData keeps the fetcher's raw payload byte-for-byte
	assert.Equal(t, []byte(raw), []byte(project.ImportData))

	assert.Equal(t, 1, store.addCalls)
}

func TestImportFillsPlatformDefaults(t *testing.T) {
	store := &fakeStore{}
	fetcher := &fakeFetcher{
		platform: PlatformArtstation,
		meta:     &Metadata{Title: "ArtStation Artwork - Xq8rZ4"},
	}

	imp := newTestImporter(store, fetcher)
	project, err := imp.Import(context.Background(), Request{
		Platform:  PlatformArtstation,
		SourceURL: "https://www.artstation.com/artwork/Xq8rZ4",
	})
	require.NoError(t, err)

	assert.Equal(t, "Artwork from ArtStation", project.Description)
	assert.Equal(t, "Digital Art", project.Category)
	assert.Equal(t, []string{"Photoshop", "Digital Painting"}, project.Technologies)
	assert.Nil(t, project.DemoEmbed)

	// With no raw payload from the fetcher, the normalized metadata is kept
	var stored Metadata
	require.NoError(t, json.Unmarshal(project.ImportData, &stored))
	assert.Equal(t, "ArtStation Artwork - Xq8rZ4", stored.Title)
}

func TestImportCategoryOverride(t *testing.T) {
	store := &fakeStore{}
	fetcher := &fakeFetcher{
		platform: PlatformBehance,
		meta:     &Metadata{Title: "Behance Project - 987654"},
	}

	imp := newTestImporter(store, fetcher)
	project, err := imp.Import(context.Background(), Request{
		Platform:  PlatformBehance,
		SourceURL: "https://www.behance.net/gallery/987654/My-Design",
		Category:  "Branding",
	})
	require.NoError(t, err)
	assert.Equal(t, "Branding", project.Category)
}

func TestImportDuplicateRejected(t *testing.T) {
	store := &fakeStore{}
	fetcher := &fakeFetcher{
		platform: PlatformSketchfab,
		meta:     &Metadata{Title: "Spooky House"},
	}

	imp := newTestImporter(store, fetcher)
	req := Request{
		Platform:  PlatformSketchfab,
		SourceURL: "https://sketchfab.com/3d-models/abc123",
	}

	_, err := imp.Import(context.Background(), req)
	require.NoError(t, err)

	// Re-submitting the same URL is rejected, never merged
	_, err = imp.Import(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errs.IsDuplicateImport(err))

	assert.Equal(t, 1, store.countBySource("sketchfab", "abc123"))
	assert.Equal(t, 1, fetcher.calls)
}

func TestImportDuplicateCaughtAtInsert(t *testing.T) {
	// A concurrent import can pass the pre-check and lose the race at
	// insert; the constraint violation must still surface as a duplicate.
	store := &fakeStore{
		addErr: errors.New(`duplicate key value violates unique constraint "idx_project_import_source"`),
	}
	fetcher := &fakeFetcher{
		platform: PlatformSketchfab,
		meta:     &Metadata{Title: "Spooky House"},
	}

	imp := newTestImporter(store, fetcher)
	_, err := imp.Import(context.Background(), Request{
		Platform:  PlatformSketchfab,
		SourceURL: "https://sketchfab.com/3d-models/abc123",
	})
	require.Error(t, err)
	assert.True(t, errs.IsDuplicateImport(err))
}

func TestImportMalformedURLSkipsPipeline(t *testing.T) {
	store := &fakeStore{}
	fetcher := &fakeFetcher{platform: PlatformSketchfab, meta: &Metadata{Title: "x"}}

	imp := newTestImporter(store, fetcher)
	_, err := imp.Import(context.Background(), Request{
		Platform:  PlatformSketchfab,
		SourceURL: "https://example.com/not-a-model",
	})
	require.Error(t, err)
	assert.True(t, errs.IsMalformedSourceURL(err))

	// No dedup lookup, fetch or persistence happened
	assert.Zero(t, store.findCalls)
	assert.Zero(t, fetcher.calls)
	assert.Zero(t, store.addCalls)
}

func TestImportMissingSourceURL(t *testing.T) {
	store := &fakeStore{}
	imp := newTestImporter(store, &fakeFetcher{platform: PlatformSketchfab})

	_, err := imp.Import(context.Background(), Request{Platform: PlatformSketchfab})
	require.Error(t, err)
	assert.True(t, errs.IsMissingRequiredFieldError(err))
	assert.Zero(t, store.addCalls)
}

func TestImportUnsupportedPlatform(t *testing.T) {
	store := &fakeStore{}
	imp := newTestImporter(store, &fakeFetcher{platform: PlatformSketchfab})

	_, err := imp.Import(context.Background(), Request{
		Platform:  Platform("deviantart"),
		SourceURL: "https://www.deviantart.com/art/thing-1",
	})
	require.Error(t, err)
	assert.True(t, errs.IsUnsupportedPlatform(err))
}

func TestImportFetchFailureDoesNotPersist(t *testing.T) {
	store := &fakeStore{}
	fetcher := &fakeFetcher{
		platform: PlatformSketchfab,
		err:      errs.NewMetadataFetchError("sketchfab", "abc123", errors.New("connection refused")),
	}

	imp := newTestImporter(store, fetcher)
	_, err := imp.Import(context.Background(), Request{
		Platform:  PlatformSketchfab,
		SourceURL: "https://sketchfab.com/3d-models/abc123",
	})
	require.Error(t, err)
	assert.True(t, errs.IsMetadataFetch(err))
	assert.Zero(t, store.addCalls)
}

func TestImportManual(t *testing.T) {
	store := &fakeStore{}
	imp := newTestImporter(store)

	project, err := imp.ImportManual(context.Background(), &models.Project{
		Title:       "X",
		Description: "Y",
		Category:    "Z",
	})
	require.NoError(t, err)

	require.NotNil(t, project.ImportedFrom)
	assert.Equal(t, models.ImportedFromManual, *project.ImportedFrom)
	assert.Nil(t, project.ExternalID)
	assert.Equal(t, 1, store.addCalls)
}

func TestImportManualValidation(t *testing.T) {
	store := &fakeStore{}
	imp := newTestImporter(store)

	tests := []struct {
		name    string
		project *models.Project
	}{
		{"nil payload", nil},
		{"missing title", &models.Project{Description: "Y", Category: "Z"}},
		{"missing description", &models.Project{Title: "X", Category: "Z"}},
		{"missing category", &models.Project{Title: "X", Description: "Y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := imp.ImportManual(context.Background(), tt.project)
			require.Error(t, err)
			assert.True(t, errs.IsMissingRequiredFieldError(err))
		})
	}
	assert.Zero(t, store.addCalls)
}

func TestImportManualNotDeduplicated(t *testing.T) {
	store := &fakeStore{}
	imp := newTestImporter(store)

	for i := 0; i < 2; i++ {
		_, err := imp.ImportManual(context.Background(), &models.Project{
			Title:       "X",
			Description: "Y",
			Category:    "Z",
		})
		require.NoError(t, err)
	}
	assert.Len(t, store.projects, 2)
}
