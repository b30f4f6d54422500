package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/zealand/roombooking/internal/auth"
	"github.com/zealand/roombooking/internal/filteroption"
)

type stubService struct {
	gotUser int
}

func (s *stubService) GetFilterOptions(_ context.Context, userID int) (*filteroption.FilterOptions, error) {
	s.gotUser = userID
	return &filteroption.FilterOptions{
		Departments:  map[string]string{"1": "Roskilde"},
		Buildings:    map[string]string{},
		RoomTypes:    map[string]string{},
		TimeSlots:    filteroption.TimeSlots(),
		LevelOptions: filteroption.LevelOptions(),
	}, nil
}

func TestGetFilterOptionsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubService{}
	r := gin.New()
	RegisterRoutes(r.Group("/v1"), NewHandler(svc), func(c *gin.Context) {
		auth.SetUser(c, 9, "x@example.com")
		c.Next()
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/filter-options", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 9, svc.gotUser)
	assert.Contains(t, w.Body.String(), `"departments":{"1":"Roskilde"}`)
	assert.Contains(t, w.Body.String(), `"8":"8-10"`)
}
