package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Mmasetshaba28/haircut-booking/internal/auth"
	"github.com/Mmasetshaba28/haircut-booking/internal/models"
)

func newTestRouter(issuer *auth.Issuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	secured := r.Group("/", AuthMiddleware(issuer))
	secured.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID),
			"role":    c.MustGet(ContextUserRole),
		})
	})

	admin := secured.Group("/", RequireAdmin())
	admin.GET("/admin-only", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := newTestRouter(auth.NewIssuer("test-secret"))

	if w := get(r, "/whoami", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	r := newTestRouter(auth.NewIssuer("test-secret"))

	if w := get(r, "/whoami", "garbage"); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	issuer := auth.NewIssuer("test-secret")
	r := newTestRouter(issuer)

	token, err := issuer.Issue(7, models.RoleCustomer)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if w := get(r, "/whoami", token); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	issuer := auth.NewIssuer("test-secret")
	r := newTestRouter(issuer)

	customerToken, err := issuer.Issue(7, models.RoleCustomer)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	adminToken, err := issuer.Issue(1, models.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if w := get(r, "/admin-only", customerToken); w.Code != http.StatusForbidden {
		t.Fatalf("customer: status = %d, want 403", w.Code)
	}
	if w := get(r, "/admin-only", adminToken); w.Code != http.StatusOK {
		t.Fatalf("admin: status = %d, want 200", w.Code)
	}
}
