package database

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sakthirv/portfolio-backend/errs"
	"github.com/sakthirv/portfolio-backend/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Project{}, &models.User{}))
	return db
}

func strPtr(s string) *string {
	return &s
}

func importedProject(platform, externalID string) *models.Project {
	return &models.Project{
		Title:        "Spooky House",
		Description:  "A haunted house model",
		Category:     "3D Modeling",
		Technologies: []string{"Blender", "3D Modeling"},
		ImportedFrom: strPtr(platform),
		ExternalID:   strPtr(externalID),
		ExternalURL:  strPtr("https://sketchfab.com/3d-models/" + externalID),
		ImportData:   json.RawMessage(`{"uid":"` + externalID + `"}`),
	}
}

func TestProjectRepoAddAndFindBySource(t *testing.T) {
	repo := NewProjectRepo(openTestDB(t))

	project := importedProject("sketchfab", "abc123")
	require.NoError(t, repo.Add(project))
	assert.NotEqual(t, uuid.Nil, project.ID)

	found, err := repo.FindBySource("sketchfab", "abc123")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, project.ID, found.ID)
	assert.Equal(t, []string{"Blender", "3D Modeling"}, found.Technologies)

	// importData survives the round trip untouched
	assert.JSONEq(t, `{"uid":"abc123"}`, string(found.ImportData))

	missing, err := repo.FindBySource("sketchfab", "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProjectRepoDuplicateImportConstraint(t *testing.T) {
	repo := NewProjectRepo(openTestDB(t))

	require.NoError(t, repo.Add(importedProject("sketchfab", "abc123")))

	err := repo.Add(importedProject("sketchfab", "abc123"))
	require.Error(t, err)
	assert.True(t, errs.IsDuplicateKey(err))

	// Same identifier under a different platform is a distinct item
	require.NoError(t, repo.Add(importedProject("artstation", "abc123")))

	projects, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestProjectRepoManualImportsNeverCollide(t *testing.T) {
	repo := NewProjectRepo(openTestDB(t))

	for i := 0; i < 2; i++ {
		manual := &models.Project{
			Title:        "X",
			Description:  "Y",
			Category:     "Z",
			ImportedFrom: strPtr(models.ImportedFromManual),
		}
		require.NoError(t, repo.Add(manual))
	}

	projects, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestProjectRepoFindByIDMissing(t *testing.T) {
	repo := NewProjectRepo(openTestDB(t))

	project := importedProject("behance", "987654")
	require.NoError(t, repo.Add(project))

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	require.NoError(t, repo.Delete(project.ID))

	found, err = repo.FindByID(project.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepoRoundTrip(t *testing.T) {
	repo := NewUserRepo(openTestDB(t))

	user := &models.User{Username: "admin"}
	require.NoError(t, user.SetPassword("s3cret"))
	require.NoError(t, repo.Add(user))

	found, err := repo.FindByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.CheckPassword("s3cret"))
	assert.False(t, found.CheckPassword("wrong"))

	missing, err := repo.FindByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
