package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler    authHandler
	projectHandler projectHandler
	importHandler  importHandler
	contactHandler contactHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// ImportRequest is the body accepted by the fetch-based import endpoints
type ImportRequest struct {
	SourceURL string `json:"sourceUrl"`
	Category  string `json:"category,omitempty"`
	Featured  bool   `json:"featured,omitempty"`
}

// ImportResponse wraps a successfully imported project
type ImportResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Project any    `json:"project"`
}
