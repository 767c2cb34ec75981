package quiz

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/a-h/scentquiz/models"
	"github.com/google/go-cmp/cmp"
)

func notes(n int) (notes []string) {
	for i := range n {
		notes = append(notes, fmt.Sprintf("note %d", i))
	}
	return notes
}

func TestNoteTags(t *testing.T) {
	t.Run("ten notes show eight tags and a +2 more tag", func(t *testing.T) {
		tags := NoteTags(notes(10))
		if len(tags) != 9 {
			t.Fatalf("expected 9 tags, got %d", len(tags))
		}
		for i, tag := range tags[:8] {
			expected := Tag{Text: fmt.Sprintf("note %d", i), Kind: TagKindNote}
			if diff := cmp.Diff(expected, tag); diff != "" {
				t.Error(diff)
			}
		}
		if diff := cmp.Diff(Tag{Text: "+2 more", Kind: TagKindMore}, tags[8]); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("no notes show a single placeholder", func(t *testing.T) {
		expected := []Tag{{Text: "Notes unavailable", Kind: TagKindUnavailable}}
		if diff := cmp.Diff(expected, NoteTags(nil)); diff != "" {
			t.Error(diff)
		}
		if diff := cmp.Diff(expected, NoteTags([]string{})); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("exactly eight notes have no more tag", func(t *testing.T) {
		tags := NoteTags(notes(8))
		if len(tags) != 8 {
			t.Fatalf("expected 8 tags, got %d", len(tags))
		}
		for _, tag := range tags {
			if tag.Kind != TagKindNote {
				t.Errorf("unexpected tag %v", tag)
			}
		}
	})
}

func TestRender(t *testing.T) {
	q := Query{Preferences: "fresh citrus", Gender: "All"}

	t.Run("errors show a single error message", func(t *testing.T) {
		actual := Render(q, nil, errors.New("connection refused"))
		expected := View{
			Query:       q,
			Message:     ErrorMessage,
			MessageKind: MessageKindError,
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("empty responses show the no matches message", func(t *testing.T) {
		actual := Render(q, []models.QuizResult{}, nil)
		expected := View{
			Query:       q,
			Message:     NoMatchesMessage,
			MessageKind: MessageKindNoMatches,
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("results are rendered as cards in server order", func(t *testing.T) {
		results := []models.QuizResult{
			{Cologne: models.Cologne{Brand: "Dior", Name: "Sauvage", Notes: []string{"bergamot"}, URL: "https://example.com/sauvage"}, Match: ptr(87)},
			{Cologne: models.Cologne{Brand: "Chanel", Name: "Bleu"}, Distance: ptr(0.4)},
			{Cologne: models.Cologne{Brand: "Creed", Name: "Aventus", Notes: notes(10)}, Distance: ptr(1.2)},
		}
		actual := Render(q, results, nil)
		expected := View{
			Query: q,
			Cards: []Card{
				{
					Index: 0, Brand: "Dior", Name: "Sauvage", Match: 87, URL: "https://example.com/sauvage",
					Tags:           []Tag{{Text: "bergamot", Kind: TagKindNote}},
					AnimationDelay: 0,
				},
				{
					Index: 1, Brand: "Chanel", Name: "Bleu", Match: 60,
					Tags:           []Tag{{Text: NotesUnavailable, Kind: TagKindUnavailable}},
					AnimationDelay: 100 * time.Millisecond,
				},
				{
					Index: 2, Brand: "Creed", Name: "Aventus", Match: 10,
					Tags:           NoteTags(notes(10)),
					AnimationDelay: 200 * time.Millisecond,
				},
			},
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("results without a score are treated as a failure", func(t *testing.T) {
		results := []models.QuizResult{
			{Cologne: models.Cologne{Brand: "Dior", Name: "Sauvage"}, Match: ptr(87)},
			{Cologne: models.Cologne{Brand: "Chanel", Name: "Bleu"}},
		}
		actual := Render(q, results, nil)
		if actual.MessageKind != MessageKindError || len(actual.Cards) != 0 {
			t.Errorf("expected an error view, got %+v", actual)
		}
	})
}

func TestLoadingView(t *testing.T) {
	q := Query{Preferences: "oud"}
	actual := Loading(q)
	if !actual.Loading || !actual.ResultsHidden {
		t.Errorf("expected loading view with hidden results, got %+v", actual)
	}
	if len(actual.Cards) != 0 || actual.Message != "" {
		t.Errorf("expected prior results to be cleared, got %+v", actual)
	}
}

func TestCardMatchLabel(t *testing.T) {
	if actual := (Card{Match: 60}).MatchLabel(); actual != "60% Match" {
		t.Errorf("unexpected label %q", actual)
	}
}
