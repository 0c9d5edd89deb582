package rolesapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restriction-app/internal/domain/roles"

	"github.com/gin-gonic/gin"
)

func TestListRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/roles", ListRoles)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/roles", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Roles []roles.Role `json:"roles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Roles) != len(roles.DefaultRoles) {
		t.Fatalf("got %d roles, want %d", len(body.Roles), len(roles.DefaultRoles))
	}
	if body.Roles[0].ID != "administrator" {
		t.Fatalf("first role = %q, want administrator", body.Roles[0].ID)
	}
}
