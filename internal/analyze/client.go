package analyze

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

// default client-side bound on one exchange, independent of any
// server-side timeout
const DefaultTimeout = 25 * time.Second

// connection settings for the analysis service
type Config struct {
	// base address of the service, e.g. http://localhost:8080
	Endpoint string
	// per-exchange bound; DefaultTimeout when zero
	Timeout time.Duration
	// optional bearer token attached to every exchange
	AuthToken string
}

// executes analyze exchanges against the remote service. Stateless and
// safe for reuse; each Submit call is an independent exchange.
type Client struct {
	endpoint   string
	timeout    time.Duration
	authToken  string
	httpClient *http.Client
}

// creates a client for the given service
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		timeout:   timeout,
		authToken: cfg.AuthToken,
		// transport-level timeout is handled per-request via context,
		// so the shared http.Client carries none
		httpClient: &http.Client{},
	}
}

// performs exactly one analyze exchange: a single POST, bounded by the
// configured timeout, no retries. Failures are always *Error with a
// classified kind; the bounding timer is disarmed on every exit path.
func (c *Client) Submit(ctx context.Context, req Request) (*Result, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("failed to marshal request: %v", err)}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/api/analyze", c.endpoint)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("failed to create request: %v", err)}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.classifyTransportError(ctx, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// a timeout elapsing mid-read still counts as a timeout,
		// regardless of what partial response existed
		return nil, c.classifyTransportError(ctx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Kind:    KindService,
			Message: extractErrorMessage(resp.Header.Get("Content-Type"), body),
			Status:  resp.StatusCode,
		}
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &Error{Kind: KindTransport, Message: fmt.Sprintf("failed to parse response: %v", err)}
	}

	return &result, nil
}

// maps a transport-level failure to Timeout or Transport depending on
// whether the bounding timer fired
func (c *Client) classifyTransportError(ctx context.Context, err error) *Error {
	if ctx.Err() == context.DeadlineExceeded {
		return &Error{Kind: KindTimeout, Message: timeoutMessage}
	}

	return &Error{Kind: KindTransport, Message: err.Error()}
}

// pulls a human-readable message out of an error response body.
// Plain text bodies are used verbatim; structured bodies yield their
// "message" field, then "error", then a fixed fallback.
func extractErrorMessage(contentType string, body []byte) string {
	if isJSONContentType(contentType) {
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}

		if err := json.Unmarshal(body, &payload); err == nil {
			if payload.Message != "" {
				return payload.Message
			}
			if payload.Error != "" {
				return payload.Error
			}
		}

		return fallbackErrorMessage
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}

	return fallbackErrorMessage
}

// reports whether the declared content type indicates structured data
func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
