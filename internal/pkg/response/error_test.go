package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zealand/roombooking/internal/pkg/apperror"
)

func serveError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Error(c, err)
	return w
}

func TestErrorUsesKindStatus(t *testing.T) {
	sentinel := apperror.New(apperror.KindConflict, "time slot already booked")
	w := serveError(sentinel.WithCause(errors.New("pg: 23505")))

	assert.Equal(t, http.StatusConflict, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "time slot already booked", body.Error)
	assert.Equal(t, "conflict", body.Kind)
}

func TestErrorHidesInternalMessages(t *testing.T) {
	w := serveError(errors.New("password=secret connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestNewListResponseNeverNull(t *testing.T) {
	resp := NewListResponse[int](nil)

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"total":0}`, string(b))
}
