package endpoints

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/doodlesbykumbi/lockable-resources/pkg/permission"
	"github.com/doodlesbykumbi/lockable-resources/pkg/server"
)

// PermissionsResponse is returned by the permission-load call
type PermissionsResponse struct {
	Granted   []string         `json:"granted"`
	ActionBar server.ActionBar `json:"actionbar"`
}

// RegisterPermissionsEndpoints registers the permission-load endpoint
func RegisterPermissionsEndpoints(s *server.Server) {
	session := s.Session

	// POST /permissions - Load the raw permission set {"UNLOCK": true, ...}
	s.Router.HandleFunc("/permissions", handleLoadPermissions(session)).Methods("POST")
}

func handleLoadPermissions(session *server.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw permission.Grants
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid permissions: "+err.Error())
			return
		}

		effective := session.LoadPermissions(raw)
		granted := effective.Names()
		slog.DebugContext(r.Context(), "permissions loaded", "granted", granted)

		respondWithJSON(w, http.StatusOK, PermissionsResponse{
			Granted:   granted,
			ActionBar: session.ActionBar(),
		})
	}
}
