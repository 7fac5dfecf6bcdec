package analyze

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api"))

	return router
}

func postAnalyze(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func validRequest() AnalyzeRequest {
	return AnalyzeRequest{
		Language: "python",
		Mode:     "interview",
		Solution: strings.Repeat("x", 30),
	}
}

func TestHandler_Success(t *testing.T) {
	recorder := postAnalyze(t, newTestRouter(), validRequest())

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Summary)
	assert.NotEmpty(t, resp.Correctness.Intuition)
	assert.NotEmpty(t, resp.Complexity.Time)
	assert.NotEmpty(t, resp.EdgeCases)
	assert.NotEmpty(t, resp.Tests)
}

func TestHandler_DeepModeReturnsMore(t *testing.T) {
	router := newTestRouter()

	base := validRequest()
	deep := validRequest()
	deep.Mode = "deep"

	var baseResp, deepResp AnalyzeResponse
	require.NoError(t, json.Unmarshal(postAnalyze(t, router, base).Body.Bytes(), &baseResp))
	require.NoError(t, json.Unmarshal(postAnalyze(t, router, deep).Body.Bytes(), &deepResp))

	assert.Greater(t, len(deepResp.EdgeCases), len(baseResp.EdgeCases))
	assert.Greater(t, len(deepResp.Tests), len(baseResp.Tests))
}

func TestHandler_RejectsShortSolution(t *testing.T) {
	req := validRequest()
	req.Solution = "too short"

	recorder := postAnalyze(t, newTestRouter(), req)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var errResp map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
	assert.Equal(t, "bad_request", errResp["error"])
	assert.Contains(t, errResp["message"], "20")
}

func TestHandler_RejectsUnknownMode(t *testing.T) {
	req := validRequest()
	req.Mode = "sarcastic"

	recorder := postAnalyze(t, newTestRouter(), req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_RejectsMissingFields(t *testing.T) {
	recorder := postAnalyze(t, newTestRouter(), map[string]string{"language": "python"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
