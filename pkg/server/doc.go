// Package server exposes a headless resources page session over HTTP.
//
// A Session stands in for one open resources page: its table, action bar,
// dispatcher and note editor. The Server routes requests to it with
// gorilla/mux and logs them with gorilla/handlers.
//
// # Server Setup
//
//	session := server.NewSession(user, submitter, fetcher, nil)
//	srv := server.NewServer(session, "127.0.0.1:8090")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// Endpoints are registered via the endpoints subpackage:
//
//   - POST /permissions - Load the raw permission set
//   - PUT /resources/{name}, DELETE /resources/{name} - Render or drop a row
//   - POST /resources/{name}/select - Toggle a row checkbox
//   - GET /actionbar, GET /selection - Inspect the bar and selection
//   - POST /actions/{action} - Press a row action button
//   - POST /resources/{name}/note, GET /resources/{name}/note - Edit a note
package server
