package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrMetricsUnavailable, "Erro ao carregar métricas financeiras.", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "MET_001", body.Code)
	assert.Equal(t, "Erro ao carregar métricas financeiras.", body.Message)
}

func TestStatusFor_UnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ_999"))
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrInvalidRequest).Code)

	apiErr := FromError(errors.New("falhou"), ErrInvalidRequest)
	assert.Equal(t, ErrInvalidRequest, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)
}
