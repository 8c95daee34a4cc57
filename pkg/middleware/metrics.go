package middleware

import (
	"net/http"
	"time"

	"github.com/656yash/adwise/pkg/metrics"
)

// Rota usada no rótulo das métricas quando o caminho não está registrado
const unknownRoute = "other"

// MetricsMiddleware conta requisições e mede a duração por rota.
// knownRoute evita rótulos com caminhos arbitrários enviados pelo cliente.
func MetricsMiddleware(m *metrics.Metrics, knownRoute func(path string) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if knownRoute != nil && !knownRoute(route) {
				route = unknownRoute
			}

			m.RecordRequest(r.Method, route, rec.statusCode, time.Since(startTime))
		})
	}
}
