package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zealand/roombooking/internal/auth"
	"github.com/zealand/roombooking/internal/user"
)

type stubService struct {
	users map[string]*user.User
	pass  string
	err   error
}

func (s *stubService) AuthenticateUser(_ context.Context, email, password string) (*user.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[email]
	if !ok || password != s.pass {
		return nil, nil
	}
	return u, nil
}

func (s *stubService) GetByID(_ context.Context, id int) (*user.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func newRouter(svc user.Service, jwt *auth.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/v1"), NewUserHandler(svc, jwt), auth.AuthRequired(jwt), func(c *gin.Context) { c.Next() })
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginAndMe(t *testing.T) {
	jwt := auth.NewJWTManager("test-secret", time.Minute)
	svc := &stubService{
		users: map[string]*user.User{"ada@example.com": {ID: 4, Name: "Ada", Email: "ada@example.com", UserTypeID: 1}},
		pass:  "pw",
	}
	r := newRouter(svc, jwt)

	w := postLogin(r, `{"email":"ada@example.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotContains(t, w.Body.String(), "password")

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Ada"`)
}

func TestLoginFailures(t *testing.T) {
	jwt := auth.NewJWTManager("test-secret", time.Minute)
	svc := &stubService{users: map[string]*user.User{}, pass: "pw"}
	r := newRouter(svc, jwt)

	assert.Equal(t, http.StatusUnauthorized, postLogin(r, `{"email":"ada@example.com","password":"pw"}`).Code)
	assert.Equal(t, http.StatusBadRequest, postLogin(r, `{"email":"not-an-email","password":"pw"}`).Code)
	assert.Equal(t, http.StatusBadRequest, postLogin(r, `{}`).Code)

	svc.err = user.ErrStoreUnavailable
	assert.Equal(t, http.StatusServiceUnavailable, postLogin(r, `{"email":"ada@example.com","password":"pw"}`).Code)
}
