package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Import pipeline sentinel errors. Each terminal failure state of an import
// request maps to exactly one of these.
var (
	ErrUnsupportedPlatform = errors.New("unsupported import platform")
	ErrMalformedSourceURL  = errors.New("malformed source URL")
	ErrDuplicateImport     = errors.New("project already imported")
	ErrMetadataFetch       = errors.New("could not retrieve external metadata")
	ErrFetchTimeout        = errors.New("metadata fetch timed out")
	ErrPersistence         = errors.New("failed to persist project")
)

func NewUnsupportedPlatformError(platform string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrUnsupportedPlatform,
		Details:    fmt.Sprintf("Platform '%s' is not a supported import source", platform),
		Field:      "platform",
	}
}

func NewMalformedSourceURLError(platform, url string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMalformedSourceURL,
		Details:    fmt.Sprintf("'%s' is not a valid %s URL", url, platform),
		Field:      "sourceUrl",
	}
}

func NewDuplicateImportError(platform, externalID string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrDuplicateImport,
		Details:    fmt.Sprintf("%s item '%s' has already been imported", platform, externalID),
	}
}

func NewMetadataFetchError(platform, externalID string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrMetadataFetch,
		Details:    fmt.Sprintf("Failed to fetch %s metadata for '%s'", platform, externalID),
		Cause:      cause,
	}
}

func NewFetchTimeoutError(platform, externalID string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusGatewayTimeout,
		err:        ErrFetchTimeout,
		Details:    fmt.Sprintf("Fetching %s metadata for '%s' took too long", platform, externalID),
	}
}

func NewPersistenceError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrPersistence,
		Cause:      cause,
	}
}

func IsUnsupportedPlatform(err error) bool {
	return errors.Is(err, ErrUnsupportedPlatform)
}

func IsMalformedSourceURL(err error) bool {
	return errors.Is(err, ErrMalformedSourceURL)
}

func IsDuplicateImport(err error) bool {
	return errors.Is(err, ErrDuplicateImport)
}

func IsMetadataFetch(err error) bool {
	return errors.Is(err, ErrMetadataFetch)
}

func IsFetchTimeout(err error) bool {
	return errors.Is(err, ErrFetchTimeout)
}
