package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() Request {
	return Request{
		Language: "python",
		Mode:     ModeDeep,
		Solution: strings.Repeat("x", 25),
	}
}

func TestSubmit_Success_PassesResultThrough(t *testing.T) {
	want := Result{
		Summary: []string{"first", "second", "third"},
		Correctness: Correctness{
			Intuition:   "two pointers never cross",
			Invariants:  []string{"left <= right", "window sum is maintained"},
			ProofSketch: "induction on window size",
		},
		Complexity: Complexity{
			Time:        "O(n)",
			Space:       "O(1)",
			Explanation: "single pass",
		},
		EdgeCases: []EdgeCase{
			{Case: "empty input", Why: "loop never runs"},
			{Case: "single element", Why: "window degenerates"},
		},
		Pitfalls: []string{"off-by-one on the right bound"},
		Tests: []TestCase{
			{Input: "[]", Expected: "0", Purpose: "empty"},
			{Input: "[1]", Expected: "1", Purpose: "singleton"},
		},
		Improvements: []string{"name the window bounds"},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/analyze", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(want)
		require.NoError(t, err)
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL})
	got, err := client.Submit(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, &want, got)
}

func TestSubmit_OmitsEmptyOptionalFields(t *testing.T) {
	var captured map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := json.NewDecoder(r.Body).Decode(&captured)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL})
	req := testRequest()
	req.Problem = ""
	req.Constraints = ""

	_, err := client.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.NotContains(t, captured, "problem")
	assert.NotContains(t, captured, "constraints")
	assert.Equal(t, 25, len(captured["solution"].(string)))
}

func TestSubmit_ServiceError_MessageExtraction(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantMessage string
	}{
		{
			name:        "json error field",
			status:      http.StatusBadRequest,
			contentType: "application/json",
			body:        `{"error":"bad input"}`,
			wantMessage: "bad input",
		},
		{
			name:        "json message field wins over error",
			status:      http.StatusBadRequest,
			contentType: "application/json",
			body:        `{"error":"bad_request","message":"solution is required"}`,
			wantMessage: "solution is required",
		},
		{
			name:        "plain text used verbatim",
			status:      http.StatusInternalServerError,
			contentType: "text/plain",
			body:        "internal error",
			wantMessage: "internal error",
		},
		{
			name:        "json with no usable field",
			status:      http.StatusBadGateway,
			contentType: "application/json",
			body:        `{"details":"something"}`,
			wantMessage: "Request failed",
		},
		{
			name:        "empty body",
			status:      http.StatusServiceUnavailable,
			contentType: "text/plain",
			body:        "",
			wantMessage: "Request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body)) //nolint:errcheck
			}))
			defer server.Close()

			client := New(Config{Endpoint: server.URL})
			_, err := client.Submit(context.Background(), testRequest())

			var reqErr *Error
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, KindService, reqErr.Kind)
			assert.Equal(t, tt.wantMessage, reqErr.Message)
			assert.Equal(t, tt.status, reqErr.Status)
		})
	}
}

func TestSubmit_Timeout(t *testing.T) {
	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// never resolves within the configured bound
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	// must run before server.Close (LIFO) so the blocked handler is
	// released and Close can drain the connection
	defer close(release)

	client := New(Config{Endpoint: server.URL, Timeout: 50 * time.Millisecond})

	start := time.Now()
	_, err := client.Submit(context.Background(), testRequest())
	elapsed := time.Since(start)

	var reqErr *Error
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, KindTimeout, reqErr.Kind)
	assert.Equal(t, "Request timed out. Please try again.", reqErr.Message)
	assert.Less(t, elapsed, time.Second, "must resolve no later than the configured timeout")
}

func TestSubmit_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close() // connection refused from here on

	client := New(Config{Endpoint: endpoint})
	_, err := client.Submit(context.Background(), testRequest())

	var reqErr *Error
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, KindTransport, reqErr.Kind)
	assert.NotEmpty(t, reqErr.Message)
}

func TestSubmit_MalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("not json")) //nolint:errcheck
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL})
	_, err := client.Submit(context.Background(), testRequest())

	var reqErr *Error
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, KindTransport, reqErr.Kind)
}

func TestSubmit_CallerCancellation(t *testing.T) {
	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	// must run before server.Close (LIFO) so the blocked handler is
	// released and Close can drain the connection
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	client := New(Config{Endpoint: server.URL, Timeout: 10 * time.Second})
	_, err := client.Submit(ctx, testRequest())

	// manual cancellation short-circuits pending work without being
	// misreported as a timeout
	var reqErr *Error
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, KindTransport, reqErr.Kind)
	assert.True(t, errors.Is(ctx.Err(), context.Canceled))
}

func TestSubmit_AttachesAuthToken(t *testing.T) {
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL, AuthToken: "token-123"})
	_, err := client.Submit(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestExtractErrorMessage(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{"json message", "application/json", `{"message":"m"}`, "m"},
		{"json error", "application/json; charset=utf-8", `{"error":"e"}`, "e"},
		{"json unparseable", "application/json", `{oops`, "Request failed"},
		{"problem+json suffix", "application/problem+json", `{"error":"e"}`, "e"},
		{"text verbatim", "text/plain; charset=utf-8", " spaced out ", "spaced out"},
		{"no content type", "", "raw body", "raw body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractErrorMessage(tt.contentType, []byte(tt.body)))
		})
	}
}
