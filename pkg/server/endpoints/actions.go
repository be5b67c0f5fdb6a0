package endpoints

import (
	"net/http"

	"github.com/doodlesbykumbi/lockable-resources/pkg/rules"
	"github.com/doodlesbykumbi/lockable-resources/pkg/server"
)

// ActionResponse reports a dispatched action
type ActionResponse struct {
	Action    string   `json:"action"`
	Resources []string `json:"resources"`
}

// RegisterActionsEndpoints registers the action button endpoint
func RegisterActionsEndpoints(s *server.Server) {
	session := s.Session

	// POST /actions/{action} - Press one of the six row action buttons
	s.Router.HandleFunc("/actions/{action}", handlePress(session)).Methods("POST")
}

func handlePress(session *server.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		action, err := rules.ActionString(muxVar(r, "action"))
		if err != nil {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}

		selected, err := session.Press(r.Context(), action)
		if err != nil {
			respondWithError(w, statusFor(err), err.Error())
			return
		}
		respondWithJSON(w, http.StatusAccepted, ActionResponse{Action: action.String(), Resources: selected})
	}
}
