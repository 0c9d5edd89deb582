package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"restriction-app/internal/domain/restriction"

	"github.com/gin-gonic/gin"
)

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		held     []string
		required string
		want     int
	}{
		{"exact match", []string{"administrator"}, "administrator", http.StatusOK},
		{"stored with author casing", []string{"Administrator"}, "administrator", http.StatusOK},
		{"guard declared upper", []string{"administrator"}, "Administrator", http.StatusOK},
		{"missing role", []string{"editor"}, "administrator", http.StatusForbidden},
		{"no roles", nil, "administrator", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/guarded",
				func(c *gin.Context) {
					c.Set("identity", restriction.Identity{Authenticated: true, Roles: tc.held})
				},
				RequireRole(tc.required),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}
