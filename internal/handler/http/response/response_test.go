package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	return resp
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "abc"})

	resp := decode(t, rec)
	assert.Equal(t, 200, rec.Code)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestCreatedEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, "Clock in successful", nil)

	resp := decode(t, rec)
	assert.Equal(t, 201, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Clock in successful", resp.Message)
}

func TestSuccessWithMetaEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, []string{}, &Meta{Page: 2, Limit: 20, TotalItems: 45, TotalPages: 3})

	resp := decode(t, rec)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, int64(45), resp.Meta.TotalItems)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestValidationErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"email": "email is required"})

	resp := decode(t, rec)
	assert.Equal(t, 422, rec.Code)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "email is required", resp.Error.Details["email"])
}

func TestErrorEnvelopeCodes(t *testing.T) {
	tests := []struct {
		name string
		fn   func(*httptest.ResponseRecorder)
		code int
		want string
	}{
		{"conflict", func(r *httptest.ResponseRecorder) { Conflict(r, "dup") }, 409, "CONFLICT"},
		{"not found", func(r *httptest.ResponseRecorder) { NotFound(r, "gone") }, 404, "NOT_FOUND"},
		{"forbidden", func(r *httptest.ResponseRecorder) { Forbidden(r, "no") }, 403, "FORBIDDEN"},
		{"unauthorized", func(r *httptest.ResponseRecorder) { Unauthorized(r, "who") }, 401, "UNAUTHORIZED"},
		{"internal", func(r *httptest.ResponseRecorder) { InternalServerError(r, "oops") }, 500, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.fn(rec)

			resp := decode(t, rec)
			assert.Equal(t, tt.code, rec.Code)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.want, resp.Error.Code)
		})
	}
}

func TestUnencodableDataFallsBack(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, func() {}) // funcs have no JSON encoding

	resp := decode(t, rec)
	assert.Equal(t, 500, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ENCODING_ERROR", resp.Error.Code)
}
