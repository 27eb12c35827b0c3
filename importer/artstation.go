package importer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sakthirv/portfolio-backend/errs"
)

// ArtstationFetcher derives placeholder metadata for ArtStation artworks.
// ArtStation has no public metadata API, so the payload is synthesized
// deterministically from the identifier; the artwork page itself stays
// linked through the project's external URL.
type ArtstationFetcher struct{}

func NewArtstationFetcher() ArtstationFetcher {
	return ArtstationFetcher{}
}

func (f ArtstationFetcher) Platform() Platform {
	return PlatformArtstation
}

type artstationImportPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Software    []string `json:"software"`
	Images      []string `json:"images"`
}

func (f ArtstationFetcher) FetchMetadata(ctx context.Context, externalID string) (*Metadata, error) {
	payload := artstationImportPayload{
		Title:       fmt.Sprintf("ArtStation Artwork - %s", externalID),
		Description: "Imported artwork from ArtStation",
		Software:    []string{"Photoshop", "Blender", "ZBrush"},
		Images:      []string{},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.NewMetadataFetchError(f.Platform().String(), externalID, err)
	}

	return &Metadata{
		Title:        payload.Title,
		Description:  payload.Description,
		Images:       payload.Images,
		Technologies: payload.Software,
		Raw:          raw,
	}, nil
}
