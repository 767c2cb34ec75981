package quiz

import (
	"strings"

	"github.com/a-h/scentquiz/models"
)

// TopK is the number of matches requested per search.
const TopK = 6

// GenderAll disables the gender filter.
const GenderAll = "All"

// Query is built fresh for each search and discarded once it completes.
type Query struct {
	Preferences string `json:"preferences"`
	Gender      string `json:"gender,omitempty"`
}

// NewQuery trims the input. ok is false when nothing is left, in which
// case no search should be made.
func NewQuery(input, gender string) (q Query, ok bool) {
	q.Preferences = strings.TrimSpace(input)
	q.Gender = strings.TrimSpace(gender)
	return q, q.Preferences != ""
}

func (q Query) Request() models.QuizPostRequest {
	return models.QuizPostRequest{
		Preferences: q.Preferences,
		TopK:        TopK,
		Gender:      q.Gender,
	}
}

// SuggestionText converts the label of a suggestion chip, which is shown
// in quotes, into query text.
func SuggestionText(label string) string {
	return strings.TrimSpace(strings.ReplaceAll(label, `"`, ""))
}
