package importer

import (
	"fmt"
	"html"
	"net/url"
)

// sketchfabEmbedTemplate mirrors the embed snippet Sketchfab hands out for
// its viewer, parameterized solely by the model identifier.
const sketchfabEmbedTemplate = `<div class="sketchfab-embed-wrapper">
  <iframe
    title="%s"
    frameborder="0"
    allowfullscreen
    mozallowfullscreen="true"
    webkitallowfullscreen="true"
    allow="autoplay; fullscreen; xr-spatial-tracking"
    src="https://sketchfab.com/models/%s/embed"
    width="100%%"
    height="400">
  </iframe>
</div>`

// BuildEmbed renders the embeddable HTML fragment for a platform item, or
// nil for platforms without embed support. The identifier comes from
// user-supplied URLs, so it is escaped before interpolation to keep injected
// markup inert.
func BuildEmbed(platform Platform, externalID string) *string {
	if !platform.SupportsEmbed() {
		return nil
	}

	safeID := url.PathEscape(externalID)
	fragment := fmt.Sprintf(sketchfabEmbedTemplate, html.EscapeString(externalID), safeID)
	return &fragment
}
