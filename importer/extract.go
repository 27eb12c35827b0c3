package importer

import (
	"regexp"

	"github.com/sakthirv/portfolio-backend/errs"
)

// Each platform publishes item URLs under a fixed path marker. The first
// capture group is the external identifier, taken verbatim; the character
// class stops at the next path segment or query string.
var platformPatterns = map[Platform]*regexp.Regexp{
	PlatformSketchfab:  regexp.MustCompile(`sketchfab\.com/3d-models/([^/?]+)`),
	PlatformArtstation: regexp.MustCompile(`artstation\.com/artwork/([^/?]+)`),
	PlatformBehance:    regexp.MustCompile(`behance\.net/gallery/([^/?]+)`),
}

// ExtractExternalID resolves the platform-scoped identifier from a source
// URL. It is a pure pattern match with no side effects; a URL that does not
// contain the platform's path marker is not a valid import source.
func ExtractExternalID(platform Platform, sourceURL string) (string, error) {
	pattern, ok := platformPatterns[platform]
	if !ok {
		return "", errs.NewUnsupportedPlatformError(platform.String())
	}

	match := pattern.FindStringSubmatch(sourceURL)
	if match == nil {
		return "", errs.NewMalformedSourceURLError(platform.String(), sourceURL)
	}
	return match[1], nil
}
