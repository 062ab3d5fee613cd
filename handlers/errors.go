package handlers

import (
	"errors"
	"net/http"

	"therewecome/services/api"
)

// remoteStatus maps a failed API call to the status of our own response.
// Client errors of the API pass through; anything else is a bad gateway.
func remoteStatus(err error) int {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError
	}
	if apiErr.Kind == api.KindServer && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}
