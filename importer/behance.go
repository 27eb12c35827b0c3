package importer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sakthirv/portfolio-backend/errs"
)

// BehanceFetcher derives placeholder metadata for Behance gallery projects.
// Behance retired its public API, so the payload is synthesized
// deterministically from the identifier.
type BehanceFetcher struct{}

func NewBehanceFetcher() BehanceFetcher {
	return BehanceFetcher{}
}

func (f BehanceFetcher) Platform() Platform {
	return PlatformBehance
}

type behanceImportPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
	Images      []string `json:"images"`
}

func (f BehanceFetcher) FetchMetadata(ctx context.Context, externalID string) (*Metadata, error) {
	payload := behanceImportPayload{
		Title:       fmt.Sprintf("Behance Project - %s", externalID),
		Description: "Imported project from Behance",
		Fields:      []string{"UI/UX Design", "Graphic Design"},
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
		Technologies: payload.Fields,
		Raw:          raw,
	}, nil
}
