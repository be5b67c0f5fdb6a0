package endpoints

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/doodlesbykumbi/lockable-resources/pkg/resource"
	"github.com/doodlesbykumbi/lockable-resources/pkg/server"
)

// SelectRequest toggles a row checkbox
type SelectRequest struct {
	Checked bool `json:"checked"`
}

// SelectionResponse lists the cached snapshots of the checked rows
type SelectionResponse struct {
	Resources []resource.Resource `json:"resources"`
}

// RegisterResourcesEndpoints registers the table and action bar endpoints
func RegisterResourcesEndpoints(s *server.Server) {
	session := s.Session

	// PUT /resources/{name} - Render a row with its snapshot
	s.Router.HandleFunc("/resources/{name}", handlePutResource(session)).Methods("PUT")

	// DELETE /resources/{name} - Drop a row
	s.Router.HandleFunc("/resources/{name}", handleDeleteResource(session)).Methods("DELETE")

	// POST /resources/{name}/select - Toggle a row checkbox
	s.Router.HandleFunc("/resources/{name}/select", handleSelect(session)).Methods("POST")

	// GET /actionbar - Current button states
	s.Router.HandleFunc("/actionbar", handleActionBar(session)).Methods("GET")

	// GET /selection - Checked rows
	s.Router.HandleFunc("/selection", handleSelection(session)).Methods("GET")
}

func handlePutResource(session *server.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := resourceName(r)
		if err != nil || name == "" {
			respondWithError(w, http.StatusBadRequest, "invalid resource name")
			return
		}

		var snapshot resource.Resource
		if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil && !errors.Is(err, io.EOF) {
			respondWithError(w, http.StatusBadRequest, "invalid resource: "+err.Error())
			return
		}
		if snapshot.Name != "" && snapshot.Name != name {
			respondWithError(w, http.StatusBadRequest, "resourceName does not match path")
			return
		}
		snapshot.Name = name

		session.PutResource(snapshot)
		respondWithJSON(w, http.StatusOK, session.ActionBar())
	}
}

func handleDeleteResource(session *server.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := resourceName(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid resource name")
			return
		}

		if err := session.RemoveResource(name); err != nil {
			respondWithError(w, statusFor(err), err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleSelect(session *server.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := resourceName(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid resource name")
			return
		}

		req := SelectRequest{Checked: true}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			respondWithError(w, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}

		if err := session.Select(name, req.Checked); err != nil {
			respondWithError(w, statusFor(err), err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, session.ActionBar())
	}
}

func handleActionBar(session *server.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, session.ActionBar())
	}
}

func handleSelection(session *server.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, SelectionResponse{Resources: session.Selection()})
	}
}
