package importer

import (
	"context"
	"encoding/json"
)

// Metadata is the platform-agnostic shape a fetcher produces from a
// platform's response. Raw holds the verbatim payload the metadata was
// derived from; it is persisted untouched on the project as importData and
// never interpreted downstream.
type Metadata struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Images       []string `json:"images,omitempty"`
	Technologies []string `json:"technologies,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// MetadataFetcher fetches or derives normalized metadata for one platform.
// Implementations wrap failures (network, non-2xx, malformed body) in the
// import error kinds so the caller can classify them; they never retry.
type MetadataFetcher interface {
	Platform() Platform
	FetchMetadata(ctx context.Context, externalID string) (*Metadata, error)
}
