package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sakthirv/portfolio-backend/errs"
	"github.com/sakthirv/portfolio-backend/importer"
	"github.com/sakthirv/portfolio-backend/models"
)

type importHandler struct {
	responder Responder
	logger    zerolog.Logger
	importer  *importer.Importer
}

func newImportHandler(imp *importer.Importer) importHandler {
	logger := log.With().Str("handlerName", "importHandler").Logger()

	return importHandler{
		responder: NewResponder(logger),
		logger:    logger,
		importer:  imp,
	}
}

// importSketchfab imports a 3D model from a Sketchfab URL
// @Summary Import from Sketchfab
// @Description Resolves the model ID from the URL, fetches its metadata and stores it as a project
// @Tags Import
// @Accept json
// @Produce json
// @Param request body ImportRequest true "Sketchfab model URL with optional category/featured"
// @Success 200 {object} ImportResponse "Imported project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid URL or already imported"
// @Failure 502 {object} ErrorResponse "Bad Gateway - Metadata fetch failed"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error persisting project"
// @Router /api/import/sketchfab [post]
func (h importHandler) importSketchfab() http.HandlerFunc {
	return h.importFromPlatform(importer.PlatformSketchfab)
}

// importArtstation imports an artwork from an ArtStation URL
// @Summary Import from ArtStation
// @Tags Import
// @Accept json
// @Produce json
// @Param request body ImportRequest true "ArtStation artwork URL with optional category/featured"
// @Success 200 {object} ImportResponse "Imported project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid URL or already imported"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error persisting project"
// @Router /api/import/artstation [post]
func (h importHandler) importArtstation() http.HandlerFunc {
	return h.importFromPlatform(importer.PlatformArtstation)
}

// importBehance imports a gallery project from a Behance URL
// @Summary Import from Behance
// @Tags Import
// @Accept json
// @Produce json
// @Param request body ImportRequest true "Behance gallery URL with optional category/featured"
// @Success 200 {object} ImportResponse "Imported project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid URL or already imported"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error persisting project"
// @Router /api/import/behance [post]
func (h importHandler) importBehance() http.HandlerFunc {
	return h.importFromPlatform(importer.PlatformBehance)
}

func (h importHandler) importFromPlatform(platform importer.Platform) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ImportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("import", err))
			return
		}

		userID, _ := ctxGetUserID(r.Context())
		h.logger.Info().
			Str("platform", platform.String()).
			Str("sourceUrl", req.SourceURL).
			Str("userId", userID).
			Msg("Import requested")

		project, err := h.importer.Import(r.Context(), importer.Request{
			Platform:  platform,
			SourceURL: req.SourceURL,
			Category:  req.Category,
			Featured:  req.Featured,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ImportResponse{
			Success: true,
			Message: "Project imported successfully",
			Project: project,
		})
	}
}

// manualImportRequest wraps the caller-supplied project payload
type manualImportRequest struct {
	ProjectData models.Project `json:"projectData"`
}

// importManual stores a caller-supplied project payload as a manual import
// @Summary Manual import
// @Description Persists a full project payload without fetching anything from an external platform
// @Tags Import
// @Accept json
// @Produce json
// @Param request body manualImportRequest true "Full project payload"
// @Success 200 {object} ImportResponse "Imported project"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing required fields"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error persisting project"
// @Router /api/import/manual [post]
func (h importHandler) importManual() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req manualImportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("import", err))
			return
		}

		project, err := h.importer.ImportManual(r.Context(), &req.ProjectData)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ImportResponse{
			Success: true,
			Message: "Project imported successfully",
			Project: project,
		})
	}
}
