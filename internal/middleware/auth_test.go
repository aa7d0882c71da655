package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guru_learn_backend/internal/config"
	"guru_learn_backend/internal/model"
	"guru_learn_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type fakeResolver struct {
	users map[uint]*model.User
}

func (r *fakeResolver) FindByID(id uint) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func testRouter(cfg *config.Config, resolver *fakeResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authed := router.Group("/api")
	authed.Use(AuthMiddleware(cfg, resolver))
	authed.GET("/profile", func(c *gin.Context) {
		util.Success(c, util.CurrentUser(c))
	})

	admin := router.Group("/api/admin")
	admin.Use(AuthMiddleware(cfg, resolver), RoleMiddleware(model.RoleAdmin))
	admin.GET("/users", func(c *gin.Context) {
		util.Success(c, nil)
	})

	return router
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret"
	cfg.JWT.ExpireTime = time.Hour

	regular := &model.User{BaseModel: model.BaseModel{ID: 1}, Email: "user@example.com", Role: model.RoleUser}
	admin := &model.User{BaseModel: model.BaseModel{ID: 2}, Email: "admin@example.com", Role: model.RoleAdmin}
	deleted := &model.User{BaseModel: model.BaseModel{ID: 3}, Email: "gone@example.com", Role: model.RoleUser}

	resolver := &fakeResolver{users: map[uint]*model.User{1: regular, 2: admin}}
	router := testRouter(cfg, resolver)

	userToken, err := util.GenerateJWT(regular, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	if err != nil {
		t.Fatal(err)
	}
	adminToken, err := util.GenerateJWT(admin, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	if err != nil {
		t.Fatal(err)
	}
	deletedToken, err := util.GenerateJWT(deleted, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	if err != nil {
		t.Fatal(err)
	}
	expiredToken, err := util.GenerateJWT(regular, cfg.JWT.Secret, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no token", "/api/profile", "", http.StatusUnauthorized},
		{"malformed header", "/api/profile", "Token abc", http.StatusUnauthorized},
		{"garbage token", "/api/profile", "Bearer garbage", http.StatusUnauthorized},
		{"expired token", "/api/profile", "Bearer " + expiredToken, http.StatusUnauthorized},
		{"deleted user token", "/api/profile", "Bearer " + deletedToken, http.StatusUnauthorized},
		{"valid token", "/api/profile", "Bearer " + userToken, http.StatusOK},
		{"admin route without token", "/api/admin/users", "", http.StatusUnauthorized},
		{"admin route as user", "/api/admin/users", "Bearer " + userToken, http.StatusForbidden},
		{"admin route as admin", "/api/admin/users", "Bearer " + adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestAuthMiddlewareClearsPassword(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret"

	user := &model.User{BaseModel: model.BaseModel{ID: 7}, Email: "u@example.com", Role: model.RoleUser, Password: "hashed"}
	resolver := &fakeResolver{users: map[uint]*model.User{7: user}}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware(cfg, resolver))
	router.GET("/whoami", func(c *gin.Context) {
		got := util.CurrentUser(c)
		if got == nil {
			t.Fatal("no user attached to context")
		}
		if got.Password != "" {
			t.Errorf("password leaked into request context: %q", got.Password)
		}
		c.Status(http.StatusOK)
	})

	token, err := util.GenerateJWT(user, cfg.JWT.Secret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
