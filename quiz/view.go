package quiz

import (
	"fmt"
	"time"

	"github.com/a-h/scentquiz/models"
)

const (
	// MaxNoteTags is the number of notes shown on a card before the rest
	// are summarised in a "+N more" tag.
	MaxNoteTags = 8

	// AnimationStep is the delay added per card so that cards appear in turn.
	AnimationStep = 100 * time.Millisecond
)

const (
	NoMatchesMessage   = "No matches found. Try modifying your search."
	ErrorMessage       = "Could not reach the recommendation engine. Please try again later."
	NotesUnavailable   = "Notes unavailable"
	moreNotesTagFormat = "+%d more"
)

type TagKind string

const (
	TagKindNote        TagKind = "note"
	TagKindMore        TagKind = "more"
	TagKindUnavailable TagKind = "unavailable"
)

type Tag struct {
	Text string  `json:"text"`
	Kind TagKind `json:"kind"`
}

type Card struct {
	Index          int           `json:"index"`
	Brand          string        `json:"brand"`
	Name           string        `json:"name"`
	Match          int           `json:"match"`
	URL            string        `json:"url,omitempty"`
	Tags           []Tag         `json:"tags"`
	AnimationDelay time.Duration `json:"animationDelay"`
}

// MatchLabel is the text shown in the card's match slot.
func (c Card) MatchLabel() string {
	return fmt.Sprintf("%d%% Match", c.Match)
}

type MessageKind string

const (
	MessageKindNone      MessageKind = ""
	MessageKindNoMatches MessageKind = "no-matches"
	MessageKindError     MessageKind = "error"
)

// View is everything a presentation needs to draw the quiz results region.
type View struct {
	Query         Query       `json:"query"`
	Loading       bool        `json:"loading"`
	ResultsHidden bool        `json:"resultsHidden"`
	Cards         []Card      `json:"cards,omitempty"`
	Message       string      `json:"message,omitempty"`
	MessageKind   MessageKind `json:"messageKind,omitempty"`
}

// Idle is the view before any search has been made.
func Idle() View {
	return View{ResultsHidden: true}
}

// Loading is the view while a search is in flight: prior results are
// cleared and the results region is hidden.
func Loading(q Query) View {
	return View{
		Query:         q,
		Loading:       true,
		ResultsHidden: true,
	}
}

// Failed is the view shown when the engine could not be reached or its
// response could not be read.
func Failed(q Query) View {
	return View{
		Query:       q,
		Message:     ErrorMessage,
		MessageKind: MessageKindError,
	}
}

// Render builds the view for a completed search. It depends only on its
// arguments.
func Render(q Query, results []models.QuizResult, err error) View {
	if err != nil {
		return Failed(q)
	}
	if len(results) == 0 {
		return View{
			Query:       q,
			Message:     NoMatchesMessage,
			MessageKind: MessageKindNoMatches,
		}
	}
	v := View{
		Query: q,
		Cards: make([]Card, len(results)),
	}
	for i, r := range results {
		card, ok := NewCard(i, r)
		if !ok {
			return Failed(q)
		}
		v.Cards[i] = card
	}
	return v
}

// NewCard builds the card at the given position. ok is false if the result
// has no usable score.
func NewCard(index int, r models.QuizResult) (c Card, ok bool) {
	match, ok := ResultMatch(r)
	if !ok {
		return c, false
	}
	return Card{
		Index:          index,
		Brand:          r.Cologne.Brand,
		Name:           r.Cologne.Name,
		Match:          match,
		URL:            r.Cologne.URL,
		Tags:           NoteTags(r.Cologne.Notes),
		AnimationDelay: time.Duration(index) * AnimationStep,
	}, true
}

func NoteTags(notes []string) (tags []Tag) {
	if len(notes) == 0 {
		return []Tag{{Text: NotesUnavailable, Kind: TagKindUnavailable}}
	}
	shown := notes
	if len(shown) > MaxNoteTags {
		shown = shown[:MaxNoteTags]
	}
	tags = make([]Tag, 0, len(shown)+1)
	for _, note := range shown {
		tags = append(tags, Tag{Text: note, Kind: TagKindNote})
	}
	if hidden := len(notes) - len(shown); hidden > 0 {
		tags = append(tags, Tag{Text: fmt.Sprintf(moreNotesTagFormat, hidden), Kind: TagKindMore})
	}
	return tags
}
