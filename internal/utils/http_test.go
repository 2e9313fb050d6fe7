package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"message": "healthy"}, 200)
	require.NoError(t, err)
	assert.Positive(t, n)

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"healthy"}`, rec.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(rec, make(chan int), 200)
	assert.Error(t, err)
	assert.Equal(t, 500, rec.Code)
}

func TestWriteDetail(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteDetail(rec, "Unauthorized", 401)

	assert.Equal(t, 401, rec.Code)
	assert.JSONEq(t, `{"detail":"Unauthorized"}`, rec.Body.String())
}
