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
		name           string
		code           string
		details        any
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Serviço externo vira 502 com detalhes",
			code:           ErrExternalService,
			details:        map[string]string{"source": "youtube"},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"code":"SRV_003","message":"falhou","details":{"source":"youtube"}}`,
		},
		{
			name:           "Recurso inexistente vira 404",
			code:           ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"code":"RES_001","message":"falhou"}`,
		},
		{
			name:           "Código desconhecido vira 500",
			code:           "XYZ_999",
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"code":"XYZ_999","message":"falhou"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "falhou", tt.details)

			require.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}
