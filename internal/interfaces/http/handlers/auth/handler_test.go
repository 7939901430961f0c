package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bugtrail/internal/application/user/usecases"
	"bugtrail/internal/domain/user"
	"bugtrail/internal/shared/logger"
)

type memoryUserRepo struct {
	users  map[uint]*user.User
	nextID uint
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[uint]*user.User{}, nextID: 1}
}

func (r *memoryUserRepo) Save(ctx context.Context, u *user.User) error {
	if err := u.SetID(r.nextID); err != nil {
		return err
	}
	r.users[r.nextID] = u
	r.nextID++
	return nil
}

func (r *memoryUserRepo) Update(ctx context.Context, u *user.User) error {
	r.users[u.ID()] = u
	return nil
}

func (r *memoryUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return r.users[id], nil
}

func (r *memoryUserRepo) FindByEmailOrPhone(ctx context.Context, identifier string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email() == identifier || u.Phone() == identifier {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	for _, u := range r.users {
		if u.Email() == email || u.Phone() == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryUserRepo) SearchByPrefix(ctx context.Context, prefix string) ([]*user.User, error) {
	return nil, nil
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "h:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if "h:"+password != hash {
		return assert.AnError
	}
	return nil
}

type staticTokenService struct{}

func (staticTokenService) Generate(userID uint) (string, error) { return "test-token", nil }

func setupRouter(t *testing.T) (*gin.Engine, *memoryUserRepo) {
	gin.SetMode(gin.TestMode)

	repo := newMemoryUserRepo()
	log := logger.NewLogger()
	handler := NewHandler(
		usecases.NewRegisterUseCase(repo, plainHasher{}, staticTokenService{}, log),
		usecases.NewLoginUseCase(repo, plainHasher{}, staticTokenService{}, log),
		usecases.NewResetPasswordUseCase(repo, plainHasher{}, log),
	)

	engine := gin.New()
	engine.POST("/api/auth/register", handler.Register)
	engine.POST("/api/auth/login", handler.Login)
	return engine, repo
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("register returns token and public user", func(t *testing.T) {
		engine, _ := setupRouter(t)

		w := postJSON(t, engine, "/api/auth/register", map[string]interface{}{
			"name":     "Alice",
			"email":    "alice@example.com",
			"phone":    "111",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `"token":"test-token"`)
		assert.Contains(t, body, `"email":"alice@example.com"`)
		assert.NotContains(t, body, "secret123")
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		engine, _ := setupRouter(t)

		first := postJSON(t, engine, "/api/auth/register", map[string]interface{}{
			"name": "Alice", "email": "alice@example.com", "phone": "111", "password": "secret123",
		})
		require.Equal(t, http.StatusCreated, first.Code)

		second := postJSON(t, engine, "/api/auth/register", map[string]interface{}{
			"name": "Clone", "email": "alice@example.com", "phone": "222", "password": "secret123",
		})
		assert.Equal(t, http.StatusConflict, second.Code)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		engine, _ := setupRouter(t)

		w := postJSON(t, engine, "/api/auth/register", map[string]interface{}{
			"name": "Alice",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	register := func(t *testing.T, engine *gin.Engine) {
		w := postJSON(t, engine, "/api/auth/register", map[string]interface{}{
			"name": "Alice", "email": "alice@example.com", "phone": "111", "password": "secret123",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("login with email", func(t *testing.T) {
		engine, _ := setupRouter(t)
		register(t, engine)

		w := postJSON(t, engine, "/api/auth/login", map[string]interface{}{
			"username": "alice@example.com", "password": "secret123",
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"test-token"`)
	})

	t.Run("login with phone", func(t *testing.T) {
		engine, _ := setupRouter(t)
		register(t, engine)

		w := postJSON(t, engine, "/api/auth/login", map[string]interface{}{
			"username": "111", "password": "secret123",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		engine, _ := setupRouter(t)

		w := postJSON(t, engine, "/api/auth/login", map[string]interface{}{
			"username": "nobody@example.com", "password": "secret123",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "no user found")
	})

	t.Run("wrong password", func(t *testing.T) {
		engine, _ := setupRouter(t)
		register(t, engine)

		w := postJSON(t, engine, "/api/auth/login", map[string]interface{}{
			"username": "alice@example.com", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "failed to login, check credentials")
	})
}
