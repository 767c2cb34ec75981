package get

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/a-h/respond"
	"github.com/a-h/scentquiz/quiz"
	"github.com/a-h/scentquiz/quiz/htmlview"
)

// New creates the quiz page handler. The page script posts searches to
// resultsPath; the form falls back to a server-side search on this handler.
func New(log *slog.Logger, recommender quiz.Recommender, options quiz.Options, resultsPath string) Handler {
	return Handler{
		log:         log,
		recommender: recommender,
		options:     options,
		resultsPath: resultsPath,
	}
}

type Handler struct {
	log         *slog.Logger
	recommender quiz.Recommender
	options     quiz.Options
	resultsPath string
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("preferences")
	gender := r.URL.Query().Get("gender")
	if gender == "" {
		gender = h.options.DefaultGender()
	}

	page := htmlview.Page{
		Input:       input,
		Gender:      gender,
		Options:     h.options,
		View:        quiz.Idle(),
		SearchPath:  r.URL.Path,
		ResultsPath: h.resultsPath,
	}

	status := http.StatusOK
	if q, ok := quiz.NewQuery(input, gender); ok {
		var err error
		page.View, err = quiz.Search(r.Context(), h.recommender, q)
		if err != nil {
			h.log.Error("failed to search", slog.String("preferences", q.Preferences), slog.Any("error", err))
			status = http.StatusBadGateway
		}
	}

	buf := new(bytes.Buffer)
	if err := htmlview.RenderPage(buf, page); err != nil {
		h.log.Error("failed to render page", slog.Any("error", err))
		respond.WithError(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
