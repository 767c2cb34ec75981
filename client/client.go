package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/jsonapi"
	"github.com/a-h/scentquiz/models"
	"github.com/google/uuid"
)

// ErrMissingScore is returned when a result carries neither a match
// percentage nor a distance.
var ErrMissingScore = errors.New("result has neither match nor distance")

func New(baseURL, apiKey string) Client {
	return Client{
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type Client struct {
	baseURL string
	apiKey  string
}

func (c Client) QuizPost(ctx context.Context, req models.QuizPostRequest) (results []models.QuizResult, err error) {
	url, err := jsonapi.URL(c.baseURL).Path("recommend", "quiz").String()
	if err != nil {
		return nil, err
	}
	results, err = jsonapi.Post[models.QuizPostRequest, []models.QuizResult](ctx, url, req,
		jsonapi.WithRequestHeader("Authorization", c.apiKey),
		jsonapi.WithRequestHeader("X-Request-ID", uuid.NewString()))
	if err != nil {
		return nil, err
	}
	if err = checkScores(results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c Client) SimilarGet(ctx context.Context, cologneID int64, topK int) (results []models.QuizResult, err error) {
	url, err := jsonapi.URL(c.baseURL).
		Path("recommend", "similar", strconv.FormatInt(cologneID, 10)).
		Query(map[string]string{"top_k": strconv.Itoa(topK)}).
		String()
	if err != nil {
		return nil, err
	}
	if err = c.get(ctx, url, &results); err != nil {
		return nil, err
	}
	if err = checkScores(results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c Client) ColognesGet(ctx context.Context, limit int) (colognes []models.ColognesListItem, err error) {
	url, err := jsonapi.URL(c.baseURL).
		Path("colognes").
		Query(map[string]string{"limit": strconv.Itoa(limit)}).
		String()
	if err != nil {
		return nil, err
	}
	err = c.get(ctx, url, &colognes)
	return colognes, err
}

func (c Client) get(ctx context.Context, url string, v any) (err error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	res, err := jsonapi.Raw(httpReq,
		jsonapi.WithRequestHeader("Authorization", c.apiKey),
		jsonapi.WithRequestHeader("X-Request-ID", uuid.NewString()))
	if err != nil {
		return fmt.Errorf("failed to perform HTTP request: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(res.Body)
		return jsonapi.InvalidStatusError{
			Status: res.StatusCode,
			Body:   string(body),
		}
	}
	if err = json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

func checkScores(results []models.QuizResult) error {
	for i, r := range results {
		if r.Match == nil && r.Distance == nil {
			return fmt.Errorf("result %d: %w", i, ErrMissingScore)
		}
	}
	return nil
}
