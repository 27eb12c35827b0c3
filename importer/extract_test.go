package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakthirv/portfolio-backend/errs"
)

func TestExtractExternalID(t *testing.T) {
	tests := []struct {
		name      string
		platform  Platform
		sourceURL string
		wantID    string
	}{
		{
			name:      "sketchfab model URL",
			platform:  PlatformSketchfab,
			sourceURL: "https://sketchfab.com/3d-models/abc123",
			wantID:    "abc123",
		},
		{
			name:      "sketchfab URL with trailing query string",
			platform:  PlatformSketchfab,
			sourceURL: "https://sketchfab.com/3d-models/abc123?utm_source=share",
			wantID:    "abc123",
		},
		{
			name:      "sketchfab URL with trailing path segment",
			platform:  PlatformSketchfab,
			sourceURL: "https://sketchfab.com/3d-models/abc123/edit",
			wantID:    "abc123",
		},
		{
			name:      "sketchfab slugged identifier taken verbatim",
			platform:  PlatformSketchfab,
			sourceURL: "https://sketchfab.com/3d-models/spooky-house-9f1c2d",
			wantID:    "spooky-house-9f1c2d",
		},
		{
			name:      "artstation artwork URL",
			platform:  PlatformArtstation,
			sourceURL: "https://www.artstation.com/artwork/Xq8rZ4",
			wantID:    "Xq8rZ4",
		},
		{
			name:      "behance gallery URL",
			platform:  PlatformBehance,
			sourceURL: "https://www.behance.net/gallery/987654/My-Design",
			wantID:    "987654",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractExternalID(tt.platform, tt.sourceURL)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestExtractExternalIDMalformedURL(t *testing.T) {
	tests := []struct {
		name      string
		platform  Platform
		sourceURL string
	}{
		{"unrelated host", PlatformSketchfab, "https://example.com/not-a-model"},
		{"wrong path marker", PlatformSketchfab, "https://sketchfab.com/models/abc123"},
		{"marker without identifier", PlatformSketchfab, "https://sketchfab.com/3d-models/"},
		{"cross-platform URL", PlatformArtstation, "https://sketchfab.com/3d-models/abc123"},
		{"empty URL", PlatformBehance, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractExternalID(tt.platform, tt.sourceURL)
			require.Error(t, err)
			assert.True(t, errs.IsMalformedSourceURL(err))
			assert.Empty(t, id)
		})
	}
}

func TestExtractExternalIDUnsupportedPlatform(t *testing.T) {
	_, err := ExtractExternalID(Platform("deviantart"), "https://www.deviantart.com/art/thing-1")
	require.Error(t, err)
	assert.True(t, errs.IsUnsupportedPlatform(err))
}
