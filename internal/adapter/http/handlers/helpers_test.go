package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"startlabx/internal/adapter/http/middleware"
	"startlabx/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var testCaller = entities.Identity{UserID: "user-1", Email: "founder@startlabx.io", Role: "founder"}

// newTestRouter returns an engine whose requests are already authenticated as testCaller.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetIdentity(c, testCaller)
		c.Next()
	})
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
