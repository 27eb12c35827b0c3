package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sakthirv/portfolio-backend/config"
	"github.com/sakthirv/portfolio-backend/errs"
)

const defaultSketchfabAPIBase = "https://api.sketchfab.com/v3"

// sketchfabModelResponse represents the subset of the Sketchfab v3 model
// endpoint response the importer cares about. The full body is kept verbatim
// in Metadata.Raw.
type sketchfabModelResponse struct {
	UID         string `json:"uid"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ViewCount   int    `json:"viewCount"`
	LikeCount   int    `json:"likeCount"`
	Thumbnails  struct {
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	} `json:"thumbnails"`
	Tags []struct {
		Name string `json:"name"`
	} `json:"tags"`
}

// SketchfabFetcher fetches model metadata from the public Sketchfab v3 API.
type SketchfabFetcher struct {
	client  *http.Client
	baseURL string
}

// NewSketchfabFetcher builds a fetcher using SKETCHFAB_API_BASE from the
// config when set (tests point it at a local server) and the public API
// otherwise.
func NewSketchfabFetcher(cfg map[string]string) SketchfabFetcher {
	return SketchfabFetcher{
		client:  &http.Client{},
		baseURL: config.GetString(cfg, "SKETCHFAB_API_BASE", defaultSketchfabAPIBase),
	}
}

func (f SketchfabFetcher) Platform() Platform {
	return PlatformSketchfab
}

func (f SketchfabFetcher) FetchMetadata(ctx context.Context, externalID string) (*Metadata, error) {
	url := fmt.Sprintf("%s/models/%s", f.baseURL, externalID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.NewMetadataFetchError(f.Platform().String(), externalID, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errs.NewFetchTimeoutError(f.Platform().String(), externalID)
		}
		return nil, errs.NewMetadataFetchError(f.Platform().String(), externalID, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewMetadataFetchError(f.Platform().String(), externalID, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errs.NewMetadataFetchError(f.Platform().String(), externalID,
			fmt.Errorf("sketchfab API returned status %d: %s", resp.StatusCode, string(bodyBytes)))
	}

	var model sketchfabModelResponse
	if err := json.Unmarshal(bodyBytes, &model); err != nil {
		return nil, errs.NewMetadataFetchError(f.Platform().String(), externalID, err)
	}

	meta := &Metadata{
		Title:       model.Name,
		Description: model.Description,
		Raw:         bodyBytes,
	}
	if meta.Title == "" {
		meta.Title = fmt.Sprintf("Sketchfab Model - %s", externalID)
	}
	for _, image := range model.Thumbnails.Images {
		if image.URL != "" {
			meta.Images = append(meta.Images, image.URL)
		}
	}
	for _, tag := range model.Tags {
		if tag.Name != "" {
			meta.Technologies = append(meta.Technologies, tag.Name)
		}
	}

	return meta, nil
}
