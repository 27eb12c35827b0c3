package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Source tags recognized on Project.ImportedFrom. A nil ImportedFrom means
// the project was hand-authored rather than import-derived.
const (
	ImportedFromSketchfab  = "sketchfab"
	ImportedFromArtstation = "artstation"
	ImportedFromBehance    = "behance"
	ImportedFromManual     = "manual"
)

// Project represents a portfolio project, either hand-authored or imported
// from an external platform. For fetch-based imports the pair
// (imported_from, external_id) is unique; manual imports carry no external ID.
type Project struct {
	ID           uuid.UUID       `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title        string          `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string          `json:"description" db:"description" gorm:"type:text;not null"`
	Category     string          `json:"category" db:"category" gorm:"type:text;not null"`
	Images       []string        `json:"images" db:"images" gorm:"serializer:json"`
	Technologies []string        `json:"technologies" db:"technologies" gorm:"serializer:json"`
	ProjectURL   *string         `json:"projectUrl,omitempty" db:"project_url" gorm:"type:text"`
	GithubURL    *string         `json:"githubUrl,omitempty" db:"github_url" gorm:"type:text"`
	DemoEmbed    *string         `json:"demoEmbed,omitempty" db:"demo_embed" gorm:"type:text"`
	Featured     bool            `json:"featured" db:"featured" gorm:"not null;default:false"`
	ImportedFrom *string         `json:"importedFrom,omitempty" db:"imported_from" gorm:"type:text;uniqueIndex:idx_project_import_source"`
	ExternalID   *string         `json:"externalId,omitempty" db:"external_id" gorm:"type:text;uniqueIndex:idx_project_import_source"`
	ExternalURL  *string         `json:"externalUrl,omitempty" db:"external_url" gorm:"type:text"`
	ImportData   json.RawMessage `json:"importData,omitempty" db:"import_data" gorm:"serializer:json;type:jsonb"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at" gorm:"not null;autoUpdateTime"`
}

// BeforeCreate assigns an ID when the caller did not provide one, so inserts
// work the same against Postgres and the in-memory test database.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
