package api

import (
	"time"

	"github.com/sakthirv/portfolio-backend/config"
	"github.com/sakthirv/portfolio-backend/database"
	"github.com/sakthirv/portfolio-backend/importer"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, cfg map[string]string) *routeHandlers {
	fetchTimeout := time.Duration(config.GetInt(cfg, "IMPORT_FETCH_TIMEOUT_SECONDS", 15)) * time.Second

	imp := importer.New(
		database.ProjectRepo(),
		fetchTimeout,
		importer.NewSketchfabFetcher(cfg),
		importer.NewArtstationFetcher(),
		importer.NewBehanceFetcher(),
	)

	return &routeHandlers{
		authHandler:    newAuthHandler(database.UserRepo(), cfg),
		projectHandler: newProjectHandler(database.ProjectRepo()),
		importHandler:  newImportHandler(imp),
		contactHandler: newContactHandler(cfg),
	}
}
