// Package slovarapi implements the remote definition-lookup client.
// The service is a black-box HTTP endpoint: GET <base>?word=<query> returns
// the headword with its definitions, 404 when the word is unknown.
package slovarapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/pr-poehali-dev/word-definition-bot-1/internal/config"
	"github.com/pr-poehali-dev/word-definition-bot-1/internal/domain"
	"github.com/pr-poehali-dev/word-definition-bot-1/pkg/ctxutil"
)

// Client fetches dictionary data from the lookup service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the configured lookup endpoint.
func NewClient(cfg config.LookupConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "slovarapi"),
	}
}

// NewClientWithURL creates a Client with a custom base URL and the default
// timeout (for testing).
func NewClientWithURL(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "slovarapi"),
	}
}

// Lookup fetches definitions for the given word and classifies the outcome.
// Exactly one of the results is non-nil: either a Word with at least one
// definition, or a *domain.LookupError of kind NotFound, Server, or
// Connection. A 200 response carrying no definitions counts as NotFound.
func (c *Client) Lookup(ctx context.Context, word string) (*domain.Word, error) {
	reqURL := c.baseURL + "?word=" + url.QueryEscape(word)

	c.log.DebugContext(ctx, "lookup request",
		slog.String("word", word),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, domain.NewLookupError(domain.KindConnection, word, fmt.Errorf("create request: %w", err))
	}

	resp, err := c.doWithRetry(ctx, req, word)
	if err != nil {
		c.log.ErrorContext(ctx, "lookup request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, domain.NewLookupError(domain.KindConnection, word, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.NewLookupError(domain.KindNotFound, word, nil)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewLookupError(domain.KindServer, word, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewLookupError(domain.KindServer, word, fmt.Errorf("read body: %w", err))
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domain.NewLookupError(domain.KindServer, word, fmt.Errorf("decode json: %w", err))
	}

	if len(payload.Definitions) == 0 {
		// "Found but empty" is indistinguishable from "not found" for the user.
		return nil, domain.NewLookupError(domain.KindNotFound, word, nil)
	}

	result := mapAPIResponse(word, payload)

	c.log.DebugContext(ctx, "lookup response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("definitions", len(result.Definitions)),
	)

	return result, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "lookup retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	resp, err = c.httpClient.Do(req)
	return resp, err
}

// mapAPIResponse converts the service payload into a domain.Word.
// Synonyms stays empty: the live service never supplies them, the field is
// kept for forward compatibility only.
func mapAPIResponse(requested string, payload apiResponse) *domain.Word {
	out := &domain.Word{
		Word:        payload.Word,
		Definitions: make([]domain.Definition, 0, len(payload.Definitions)),
		Synonyms:    []string{},
	}
	if out.Word == "" {
		out.Word = requested
	}

	for _, d := range payload.Definitions {
		examples := d.Examples
		if examples == nil {
			examples = []string{}
		}
		out.Definitions = append(out.Definitions, domain.Definition{
			ID:           d.ID,
			Meaning:      d.Meaning,
			PartOfSpeech: d.PartOfSpeech,
			Examples:     examples,
		})
	}

	return out
}
