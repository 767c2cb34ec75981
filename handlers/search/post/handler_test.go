package post

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/scentquiz/models"
	"github.com/a-h/scentquiz/quiz"
	"github.com/google/go-cmp/cmp"
)

type recommenderFunc func(ctx context.Context, req models.QuizPostRequest) ([]models.QuizResult, error)

func (f recommenderFunc) QuizPost(ctx context.Context, req models.QuizPostRequest) ([]models.QuizResult, error) {
	return f(ctx, req)
}

func jsonRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func formRequest(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestHandler(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	match := 91.0

	var sixResults []models.QuizResult
	for i := range 6 {
		sixResults = append(sixResults, models.QuizResult{
			Cologne: models.Cologne{Brand: fmt.Sprintf("Brand %d", i), Name: "Name"},
			Match:   &match,
		})
	}

	tests := []struct {
		name             string
		req              *http.Request
		results          []models.QuizResult
		err              error
		expectedStatus   int
		expectedRequests []models.QuizPostRequest
		expectedCards    int
		expectedContains []string
	}{
		{
			name:           "invalid JSON returns 400",
			req:            jsonRequest(`{"preferences":`),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "blank preferences return 400 without a request",
			req:            jsonRequest(`{"preferences": "   "}`),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:             "JSON requests are searched",
			req:              jsonRequest(`{"preferences": " smoky leather ", "gender": "All"}`),
			results:          sixResults,
			expectedStatus:   http.StatusOK,
			expectedRequests: []models.QuizPostRequest{{Preferences: "smoky leather", TopK: 6, Gender: "All"}},
			expectedCards:    6,
			expectedContains: []string{"91% Match"},
		},
		{
			name:             "form requests are searched",
			req:              formRequest(url.Values{"preferences": {"vanilla"}, "gender": {"Female"}}),
			results:          []models.QuizResult{},
			expectedStatus:   http.StatusOK,
			expectedRequests: []models.QuizPostRequest{{Preferences: "vanilla", TopK: 6, Gender: "Female"}},
			expectedContains: []string{quiz.NoMatchesMessage},
		},
		{
			name:             "engine failures return the error fragment",
			req:              formRequest(url.Values{"preferences": {"vanilla"}}),
			err:              errors.New("status 500"),
			expectedStatus:   http.StatusBadGateway,
			expectedRequests: []models.QuizPostRequest{{Preferences: "vanilla", TopK: 6}},
			expectedContains: []string{quiz.ErrorMessage},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests []models.QuizPostRequest
			r := recommenderFunc(func(ctx context.Context, req models.QuizPostRequest) ([]models.QuizResult, error) {
				requests = append(requests, req)
				return tt.results, tt.err
			})
			w := httptest.NewRecorder()
			New(log, r).ServeHTTP(w, tt.req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if diff := cmp.Diff(tt.expectedRequests, requests); diff != "" {
				t.Errorf("unexpected requests:\n%s", diff)
			}
			body := w.Body.String()
			if n := strings.Count(body, `class="fragrance-card"`); n != tt.expectedCards {
				t.Errorf("expected %d cards, got %d", tt.expectedCards, n)
			}
			for _, expected := range tt.expectedContains {
				if !strings.Contains(body, expected) {
					t.Errorf("expected body to contain %q, got %s", expected, body)
				}
			}
		})
	}
}
