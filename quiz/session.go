package quiz

import (
	"context"
	"errors"
	"sync"

	"github.com/a-h/scentquiz/models"
)

// ErrUnscoredResult is returned by Search when the engine sent a result that
// has neither a match percentage nor a distance.
var ErrUnscoredResult = errors.New("quiz: result has no usable score")

// Recommender is the engine endpoint a search is sent to.
type Recommender interface {
	QuizPost(ctx context.Context, req models.QuizPostRequest) ([]models.QuizResult, error)
}

// Search sends the query and renders the outcome. The returned error is
// already reflected in the view; it is returned so that callers can log it.
func Search(ctx context.Context, r Recommender, q Query) (View, error) {
	results, err := r.QuizPost(ctx, q.Request())
	if err != nil {
		return Render(q, nil, err), err
	}
	v := Render(q, results, nil)
	if v.MessageKind == MessageKindError {
		return v, ErrUnscoredResult
	}
	return v, nil
}

// Token identifies a search within a Session.
type Token uint64

// Session orders the searches made from a single input. Only the most
// recently started search may update the view.
type Session struct {
	m      sync.Mutex
	latest Token
	cancel context.CancelFunc
}

// Begin starts a search and cancels the one before it, if it is still
// running. The returned context must be used for the search.
func (s *Session) Begin(ctx context.Context) (Token, context.Context) {
	s.m.Lock()
	defer s.m.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.latest++
	ctx, s.cancel = context.WithCancel(ctx)
	return s.latest, ctx
}

// Accept reports whether the search identified by t is the latest one.
// Responses to any other search must be discarded.
func (s *Session) Accept(t Token) bool {
	s.m.Lock()
	defer s.m.Unlock()
	return t == s.latest
}

// Close cancels the latest search.
func (s *Session) Close() {
	s.m.Lock()
	defer s.m.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
