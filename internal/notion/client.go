package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mrlokans/storyplanner/internal/config"
	"github.com/mrlokans/storyplanner/internal/logging"
)

const (
	defaultTimeout     = 30 * time.Second
	maxRetries         = 3
	initialRetryDelay  = 1 * time.Second
	maxRetryDelay      = 30 * time.Second
	retryBackoffFactor = 2
)

// Client talks to the Notion REST API on behalf of a caller-supplied token.
// The token is passed per call and never stored on the client.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	version      string
	pageSize     int
	fetchContent bool
	retryDelay   time.Duration
	logger       *zap.Logger
}

// NewClient creates a new Notion API client
func NewClient(cfg config.Notion, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultNotionAPIURL
	}
	version := cfg.Version
	if version == "" {
		version = config.DefaultNotionVersion
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > config.MaxNotionPageSize {
		pageSize = config.MaxNotionPageSize
	}

	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		baseURL:      strings.TrimRight(baseURL, "/"),
		version:      version,
		pageSize:     pageSize,
		fetchContent: cfg.FetchPageContent,
		retryDelay:   initialRetryDelay,
		logger:       logging.OrNop(logger).Named("notion"),
	}
}

// ValidateToken performs a cheap identity probe. It returns false for any
// failure, not just an explicit 401.
func (c *Client) ValidateToken(ctx context.Context, token string) bool {
	if strings.TrimSpace(token) == "" {
		return false
	}
	var me User
	if err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &me); err != nil {
		c.logger.Debug("token probe failed", zap.Error(err))
		return false
	}
	return true
}

// FetchCollection fetches a database's metadata once, then pages through all
// of its rows.
func (c *Client) FetchCollection(ctx context.Context, token, databaseID string) (*Database, []Page, error) {
	var db Database
	if err := c.do(ctx, http.MethodGet, "/databases/"+databaseID, token, nil, &db); err != nil {
		return nil, nil, fmt.Errorf("fetch database %s: %w", databaseID, err)
	}

	pages, err := c.QueryAll(ctx, token, databaseID)
	if err != nil {
		return nil, nil, err
	}
	return &db, pages, nil
}

// Query fetches a single page of database rows starting at cursor.
func (c *Client) Query(ctx context.Context, token, databaseID, cursor string) (*QueryResponse, error) {
	body := queryRequest{PageSize: c.pageSize, StartCursor: cursor}
	var resp QueryResponse
	if err := c.do(ctx, http.MethodPost, "/databases/"+databaseID+"/query", token, body, &resp); err != nil {
		return nil, fmt.Errorf("query database %s: %w", databaseID, err)
	}
	return &resp, nil
}

// QueryAll follows the continuation cursor until the source reports no more pages.
func (c *Client) QueryAll(ctx context.Context, token, databaseID string) ([]Page, error) {
	var all []Page
	var cursor string

	for {
		resp, err := c.Query(ctx, token, databaseID, cursor)
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Results...)

		if !resp.HasMore || resp.NextCursor == nil || *resp.NextCursor == "" {
			break
		}
		cursor = *resp.NextCursor
	}

	return all, nil
}

// PageContent returns the plain text of a page's top-level blocks, one line per block.
func (c *Client) PageContent(ctx context.Context, token, pageID string) (string, error) {
	var lines []string
	var cursor string

	for {
		q := url.Values{}
		q.Set("page_size", fmt.Sprintf("%d", c.pageSize))
		if cursor != "" {
			q.Set("start_cursor", cursor)
		}

		var resp blockChildrenResponse
		path := "/blocks/" + pageID + "/children?" + q.Encode()
		if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
			return "", fmt.Errorf("fetch content of page %s: %w", pageID, err)
		}

		for _, b := range resp.Results {
			if text := PlainText(b.RichText); text != "" {
				lines = append(lines, text)
			}
		}

		if !resp.HasMore || resp.NextCursor == nil || *resp.NextCursor == "" {
			break
		}
		cursor = *resp.NextCursor
	}

	return strings.Join(lines, "\n"), nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.calculateRetryDelay(attempt)
			c.logger.Debug("retrying request",
				zap.String("path", path),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(lastErr))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		lastErr = c.doOnce(ctx, method, path, token, payload, out)
		if lastErr == nil {
			return nil
		}

		// Only retry on rate limits or server errors
		if !isRetryableError(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (c *Client) doOnce(ctx context.Context, method, path, token string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Notion-Version", c.version)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// classifyResponse maps a non-2xx response onto the error taxonomy, carrying
// the upstream message where Notion provides one.
func classifyResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var apiErr apiErrorBody
	message := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		message = apiErr.Message
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrAuthentication
	case http.StatusForbidden:
		return withMessage(ErrPermission, message)
	case http.StatusNotFound:
		return withMessage(ErrNotFound, message)
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return &RemoteError{StatusCode: resp.StatusCode, Code: apiErr.Code, Message: message}
	}
}

func withMessage(sentinel error, message string) error {
	if message == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, message)
}

func (c *Client) calculateRetryDelay(attempt int) time.Duration {
	delay := c.retryDelay
	for i := 0; i < attempt; i++ {
		delay *= time.Duration(retryBackoffFactor)
	}
	if delay > maxRetryDelay {
		delay = maxRetryDelay
	}
	return delay
}

func isRetryableError(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.StatusCode >= 500
	}
	return false
}
