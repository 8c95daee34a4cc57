package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		details    any
		wantStatus int
		wantBody   string
	}{
		{
			name:       "erro de validação",
			code:       ErrInvalidRequest,
			details:    map[string]string{"field": "sort_by"},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"mensagem","code":"VAL_001","details":{"field":"sort_by"}}`,
		},
		{
			name:       "erro de banco sem detalhes",
			code:       ErrDatabaseOperation,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"mensagem","code":"SRV_002"}`,
		},
		{
			name:       "código desconhecido vira 500",
			code:       "XYZ",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"mensagem","code":"XYZ"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", tt.details)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHTTPStatusMap(t *testing.T) {
	codes := make([]string, 0, len(httpStatusMap))
	for code := range httpStatusMap {
		codes = append(codes, code)
	}

	assert.ElementsMatch(t, []string{
		ErrInvalidRequest,
		ErrInvalidFormat,
		ErrRouteNotFound,
		ErrMethodNotAllowed,
		ErrInternalServer,
		ErrDatabaseOperation,
	}, codes)
}
