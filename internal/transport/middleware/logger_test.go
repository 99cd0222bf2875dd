package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/catalog-backend/internal/config"
)

// requestLog runs one request through RequestID and Logger (the order used
// on /query) and returns the decoded "http.request" line.
func requestLog(t *testing.T, inner http.Handler, req *http.Request, extra ...Middleware) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mws := append([]Middleware{RequestID(), Logger(logger)}, extra...)
	rec := httptest.NewRecorder()
	Chain(mws...)(inner).ServeHTTP(rec, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "log output: %s", buf.String())
	assert.Equal(t, "http.request", line["msg"])
	return line, rec
}

func TestLogger_GraphQLQuery(t *testing.T) {
	body := `{"data":{"product":{"name":"Hammer"}}}`
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})

	req := httptest.NewRequest(http.MethodPost, "/query", nil)
	req.Header.Set(RequestIDHeader, "storefront-42")

	line, rec := requestLog(t, inner, req)

	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "POST", line["method"])
	assert.Equal(t, "/query", line["path"])
	assert.EqualValues(t, http.StatusOK, line["status"])
	assert.EqualValues(t, len(body), line["bytes"])
	assert.Equal(t, "storefront-42", line["request_id"])
	assert.Contains(t, line, "duration")
	assert.Equal(t, "storefront-42", rec.Header().Get(RequestIDHeader))
}

func TestLogger_RateLimitedIsWarn(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute)
	t.Cleanup(rl.Stop)

	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Spend the single token, then log the rejected request.
	Chain(rl.Limit())(inner).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/query", nil))

	line, rec := requestLog(t, inner, httptest.NewRequest(http.MethodPost, "/query", nil), rl.Limit())

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "WARN", line["level"])
	assert.EqualValues(t, http.StatusTooManyRequests, line["status"])
	assert.NotEmpty(t, line["request_id"], "rejected requests keep their generated id")
}

func TestLogger_PanicIsError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Chain(Logger(logger), Recovery(slog.New(slog.DiscardHandler)))(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("resolver blew up") }),
	)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/query", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ERROR", line["level"])
	assert.EqualValues(t, http.StatusInternalServerError, line["status"])
}

func TestLogger_PreflightIsDebug(t *testing.T) {
	cors := CORS(config.CORSConfig{AllowedOrigins: "https://shop.example.com", AllowedMethods: "POST", MaxAge: 60})
	inner := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("preflight must not reach the executor")
	})

	req := httptest.NewRequest(http.MethodOptions, "/query", nil)
	req.Header.Set("Origin", "https://shop.example.com")

	line, rec := requestLog(t, inner, req, cors)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "DEBUG", line["level"])
}
