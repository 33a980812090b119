package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/vinom-pathfinder/api/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingController struct{}

func (pingController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func (pingController) RegisterProtected(route *gin.RouterGroup) {
	route.GET("/secret", func(c *gin.Context) { c.String(http.StatusOK, "secret") })
}

func TestRouter_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	denyAll := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }

	h := NewRouter(Config{
		BaseURL:                 "/api",
		Controllers:             []i.Controller{pingController{}},
		AuthorizationMiddleware: denyAll,
	}).Handler()

	tests := []struct {
		path string
		code int
	}{
		{"/api/v1/ping", http.StatusOK},
		{"/api/v1/secret", http.StatusUnauthorized},
		{"/api/v2/ping", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
