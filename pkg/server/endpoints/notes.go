package endpoints

import (
	"context"
	"net/http"

	"github.com/doodlesbykumbi/lockable-resources/pkg/server"
)

// RegisterNotesEndpoints registers the edit-note endpoints
func RegisterNotesEndpoints(s *server.Server) {
	session := s.Session

	// POST /resources/{name}/note - Start loading the note form
	s.Router.HandleFunc("/resources/{name}/note", handleEditNote(session)).Methods("POST")

	// GET /resources/{name}/note - Current content of the note pane
	s.Router.HandleFunc("/resources/{name}/note", handleGetNote(session)).Methods("GET")
}

func handleEditNote(session *server.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := resourceName(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid resource name")
			return
		}

		// The fetch outlives the request.
		ctx := context.WithoutCancel(r.Context())
		if _, err := session.EditNote(ctx, name); err != nil {
			respondWithError(w, statusFor(err), err.Error())
			return
		}

		snapshot, _ := session.Note(name)
		respondWithJSON(w, http.StatusAccepted, snapshot)
	}
}

func handleGetNote(session *server.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := resourceName(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid resource name")
			return
		}

		snapshot, err := session.Note(name)
		if err != nil {
			respondWithError(w, statusFor(err), err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, snapshot)
	}
}
