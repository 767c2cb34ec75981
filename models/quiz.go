package models

type QuizPostRequest struct {
	// Preferences is free text describing the fragrance the user wants.
	Preferences string `json:"preferences"`

	// TopK is the number of matches to return.
	TopK int `json:"top_k"`

	// Gender optionally filters the matches, e.g. "All" or "Unisex".
	Gender string `json:"gender,omitempty"`
}

type Cologne struct {
	ID    int64    `json:"id,omitempty"`
	Brand string   `json:"brand"`
	Name  string   `json:"name"`
	Notes []string `json:"notes"`
	URL   string   `json:"url,omitempty"`
}

// QuizResult is a single match. Engines send either Match or Distance.
type QuizResult struct {
	Cologne Cologne `json:"cologne"`

	// Match is a precomputed percentage.
	Match *float64 `json:"match,omitempty"`

	// Distance is the squared euclidean distance between the normalized
	// query and cologne embeddings.
	Distance *float64 `json:"distance,omitempty"`
}
