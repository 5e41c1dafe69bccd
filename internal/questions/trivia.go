package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"bar-trivia-service/internal/domain"
)

// DefaultTriviaURL is the Open Trivia DB endpoint.
const DefaultTriviaURL = "https://opentdb.com/api.php"

// opentdb category ids for the genres the bank also knows about. Unlisted
// genres (and mixed) draw from all categories.
var triviaCategories = map[string]int{
	"sports":     21,
	"movies":     11,
	"music":      12,
	"science":    17,
	"history":    23,
	"geography":  22,
	"technology": 18,
	"games":      15,
}

// OpenTriviaSource draws multiple-choice questions from the Open Trivia DB.
// Any transport or API failure surfaces as domain.ErrProviderUnavailable and
// yields no records.
type OpenTriviaSource struct {
	baseURL string
	client  *http.Client

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewOpenTriviaSource(baseURL string, timeout time.Duration) *OpenTriviaSource {
	if baseURL == "" {
		baseURL = DefaultTriviaURL
	}
	return &OpenTriviaSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type triviaResponse struct {
	ResponseCode int `json:"response_code"`
	Results      []struct {
		Category         string   `json:"category"`
		Question         string   `json:"question"`
		CorrectAnswer    string   `json:"correct_answer"`
		IncorrectAnswers []string `json:"incorrect_answers"`
	} `json:"results"`
}

// Draw fetches count questions. The exclude list is ignored: the remote API
// has no repeat guarantee to offer, and duplicates across draws are accepted.
func (s *OpenTriviaSource) Draw(ctx context.Context, count int, genre string, _ []string) ([]Record, error) {
	query := url.Values{}
	query.Set("amount", strconv.Itoa(count))
	query.Set("type", "multiple")
	if id, ok := triviaCategories[genre]; ok {
		query.Set("category", strconv.Itoa(id))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	var payload triviaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	if payload.ResponseCode != 0 {
		return nil, fmt.Errorf("%w: response code %d", domain.ErrProviderUnavailable, payload.ResponseCode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]Record, 0, len(payload.Results))
	for _, result := range payload.Results {
		options := make([]string, 0, len(result.IncorrectAnswers)+1)
		for _, wrong := range result.IncorrectAnswers {
			options = append(options, html.UnescapeString(wrong))
		}
		correct := html.UnescapeString(result.CorrectAnswer)
		options = append(options, correct)
		records = append(records, Record{
			Text:          html.UnescapeString(result.Question),
			Options:       shuffledOptions(s.rnd, options),
			CorrectAnswer: correct,
			Topic:         html.UnescapeString(result.Category),
		})
	}
	return records, nil
}
