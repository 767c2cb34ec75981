package models

// SearchPostRequest is accepted by the web UI's search endpoint.
type SearchPostRequest struct {
	Preferences string `json:"preferences"`
	Gender      string `json:"gender"`
}
