// Package note implements the asynchronous edit-note flow of a resource row.
//
// Editing shows a loading placeholder in the row's note container, fetches
// the note form, swaps it in, runs the form's initialisation scripts,
// re-applies behaviours to the new markup and focuses the first text
// input. A failed fetch leaves the placeholder in place.
//
// At most one fetch is in flight per resource: editing the same resource
// again cancels the earlier task, and a cancelled task never touches the
// container.
package note
