package api

import (
	"net/http"

	"github.com/phrazzld/post-api/internal/api/shared"
)

// AuthStatusHandler handles GET /authorization/status requests.
// The authorization gate runs before any handler, so reaching this point
// means the caller's API key is valid; unauthorized requests were already
// answered with a 401 and an empty body.
func AuthStatusHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithStatus(w, http.StatusOK)
}
