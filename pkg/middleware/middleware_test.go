package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/656yash/adwise/pkg/log"
	"github.com/656yash/adwise/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetupTestLogger()
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCors(t *testing.T) {
	tests := []struct {
		name        string
		allowed     []string
		origin      string
		method      string
		wantStatus  int
		wantAllowed string
	}{
		{
			name:        "origem permitida",
			allowed:     []string{"http://localhost:3000"},
			origin:      "http://localhost:3000",
			method:      http.MethodGet,
			wantStatus:  http.StatusOK,
			wantAllowed: "http://localhost:3000",
		},
		{
			name:       "origem não permitida segue sem cabeçalho",
			allowed:    []string{"http://localhost:3000"},
			origin:     "http://evil.test",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
		{
			name:        "curinga libera qualquer origem",
			allowed:     []string{"*"},
			origin:      "http://dashboard.test",
			method:      http.MethodGet,
			wantStatus:  http.StatusOK,
			wantAllowed: "http://dashboard.test",
		},
		{
			name:        "preflight responde sem chamar o handler",
			allowed:     []string{"http://localhost:3000"},
			origin:      "http://localhost:3000",
			method:      http.MethodOptions,
			wantStatus:  http.StatusNoContent,
			wantAllowed: "http://localhost:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/health", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/kpi/data", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Erro interno no servidor","code":"SRV_001"}`, rec.Body.String())
}

func TestLoggingMiddleware_PropagatesCorrelationID(t *testing.T) {
	var correlationID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.NotEmpty(t, correlationID)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewMetrics("adwise", prometheus.NewRegistry())
	known := func(path string) bool { return path == "/api/health" }
	handler := MetricsMiddleware(m, known)(okHandler())

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/random/path", nil))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, `route="/api/health"`)
	assert.Contains(t, body, `route="other"`)
	assert.NotContains(t, body, `route="/random/path"`)
}

func TestStatusRecorder_KeepsFirstStatus(t *testing.T) {
	rec := newStatusRecorder(httptest.NewRecorder())

	rec.WriteHeader(http.StatusBadRequest)
	rec.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusBadRequest, rec.statusCode)
	assert.Same(t, rec, newStatusRecorder(rec))
}
