package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

var secret = []byte("mw-secret")

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(secret))
	r.GET("/private", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt("user_id")})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func request(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingOrMalformedHeader(t *testing.T) {
	r := newRouter()

	cases := map[string]string{
		"missing":      "",
		"no scheme":    "some-token",
		"wrong scheme": "Basic dXNlcjpwYXNz",
		"empty token":  "Bearer ",
		"garbage":      "Bearer not.a.jwt",
	}
	for name, header := range cases {
		if w := request(r, "/private", header); w.Code != http.StatusUnauthorized {
			t.Errorf("%s: code = %d, want 401", name, w.Code)
		}
	}
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	r := newRouter()

	token, err := NewAccessToken([]byte("other-secret"), 1, time.Minute)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if w := request(r, "/private", "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	r := newRouter()

	token, err := NewAccessToken(secret, 1, -time.Minute)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if w := request(r, "/private", "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewarePassesValidTokenAndSetsUserID(t *testing.T) {
	r := newRouter()

	token, err := NewAccessToken(secret, 42, time.Minute)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	w := request(r, "/private", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}
	if want := `"user_id":42`; !strings.Contains(w.Body.String(), want) {
		t.Errorf("body = %s, want to contain %s", w.Body.String(), want)
	}
}

func TestAuthMiddlewareSkipsPublicPaths(t *testing.T) {
	r := newRouter()

	if w := request(r, "/healthz", ""); w.Code != http.StatusOK {
		t.Errorf("code = %d, want 200", w.Code)
	}
}
