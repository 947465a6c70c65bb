package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		notReady bool
		path     string
		want     int
	}{
		{name: "healthz ok", path: "/healthz", want: 200},
		{name: "readyz ok", path: "/readyz", want: 200},
		{name: "readyz degraded when dataset empty", notReady: true, path: "/readyz", want: 503},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ready func() error
			if tc.path == "/readyz" {
				if tc.notReady {
					ready = func() error { return assertErr{} }
				} else {
					ready = func() error { return nil }
				}
			}

			r := gin.New()
			NewHealthHandler(ready).Register(r)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
		})
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "err" }
