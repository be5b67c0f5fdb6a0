package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/lockable-resources/pkg/dispatch"
	"github.com/doodlesbykumbi/lockable-resources/pkg/server"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// statusFor maps session errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, server.ErrUnknownResource), errors.Is(err, dispatch.ErrUnknownAction):
		return http.StatusNotFound
	case errors.Is(err, server.ErrActionDisabled):
		return http.StatusConflict
	case errors.Is(err, server.ErrNoteHidden):
		return http.StatusForbidden
	}
	return http.StatusBadGateway
}

func muxVar(r *http.Request, key string) string {
	v, err := url.PathUnescape(mux.Vars(r)[key])
	if err != nil {
		return mux.Vars(r)[key]
	}
	return v
}

func resourceName(r *http.Request) (string, error) {
	return url.PathUnescape(mux.Vars(r)["name"])
}

// RegisterAll registers every session endpoint on s.
func RegisterAll(s *server.Server) {
	RegisterPermissionsEndpoints(s)
	RegisterResourcesEndpoints(s)
	RegisterActionsEndpoints(s)
	RegisterNotesEndpoints(s)
}
