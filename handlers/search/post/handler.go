package post

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"

	"github.com/a-h/respond"
	"github.com/a-h/scentquiz/models"
	"github.com/a-h/scentquiz/quiz"
	"github.com/a-h/scentquiz/quiz/htmlview"
)

func New(log *slog.Logger, recommender quiz.Recommender) Handler {
	return Handler{
		log:         log,
		recommender: recommender,
	}
}

type Handler struct {
	log         *slog.Logger
	recommender quiz.Recommender
}

func decode(r *http.Request) (req models.SearchPostRequest, err error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		err = json.NewDecoder(r.Body).Decode(&req)
		return req, err
	}
	if err = r.ParseForm(); err != nil {
		return req, err
	}
	req.Preferences = r.PostForm.Get("preferences")
	req.Gender = r.PostForm.Get("gender")
	return req, nil
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := decode(r)
	if err != nil {
		h.log.Error("failed to decode body", slog.Any("error", err))
		respond.WithError(w, "failed to decode body", http.StatusBadRequest)
		return
	}
	q, ok := quiz.NewQuery(req.Preferences, req.Gender)
	if !ok {
		respond.WithError(w, "preferences must not be empty", http.StatusBadRequest)
		return
	}

	status := http.StatusOK
	view, err := quiz.Search(r.Context(), h.recommender, q)
	if err != nil {
		h.log.Error("failed to search", slog.String("preferences", q.Preferences), slog.Any("error", err))
		status = http.StatusBadGateway
	}

	buf := new(bytes.Buffer)
	if err = htmlview.RenderResults(buf, view); err != nil {
		h.log.Error("failed to render results", slog.Any("error", err))
		respond.WithError(w, "failed to render results", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
