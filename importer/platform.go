package importer

import "github.com/sakthirv/portfolio-backend/models"

// Platform identifies an external creative platform projects can be
// imported from. The set is closed: each platform has exactly one
// metadata fetcher.
type Platform string

const (
	PlatformSketchfab  Platform = models.ImportedFromSketchfab
	PlatformArtstation Platform = models.ImportedFromArtstation
	PlatformBehance    Platform = models.ImportedFromBehance
)

// ParsePlatform maps a platform tag from a request to a known Platform.
func ParsePlatform(s string) (Platform, bool) {
	switch Platform(s) {
	case PlatformSketchfab, PlatformArtstation, PlatformBehance:
		return Platform(s), true
	}
	return "", false
}

func (p Platform) String() string {
	return string(p)
}

// SupportsEmbed reports whether the platform supports inline interactive
// embedding of its items. Only Sketchfab serves an embeddable 3D viewer.
func (p Platform) SupportsEmbed() bool {
	return p == PlatformSketchfab
}

// DefaultCategory is the category assigned to imports when the caller did
// not supply one.
func (p Platform) DefaultCategory() string {
	switch p {
	case PlatformSketchfab:
		return "3D Modeling"
	case PlatformArtstation:
		return "Digital Art"
	case PlatformBehance:
		return "Design"
	}
	return "Imported"
}

// DefaultTechnologies is the technology list assigned to imports when the
// platform response carries none.
func (p Platform) DefaultTechnologies() []string {
	switch p {
	case PlatformSketchfab:
		return []string{"Blender", "3D Modeling", "Texturing"}
	case PlatformArtstation:
		return []string{"Photoshop", "Digital Painting"}
	case PlatformBehance:
		return []string{"UI/UX Design", "Graphic Design"}
	}
	return nil
}

// DefaultDescription is the description assigned to imports when the
// platform response carries none.
func (p Platform) DefaultDescription() string {
	switch p {
	case PlatformSketchfab:
		return "3D model from Sketchfab"
	case PlatformArtstation:
		return "Artwork from ArtStation"
	case PlatformBehance:
		return "Project from Behance"
	}
	return "Imported project"
}
