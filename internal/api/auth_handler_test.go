package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GioNegri/PedagogIA2/internal/api"
	"github.com/GioNegri/PedagogIA2/internal/domain"
	"github.com/GioNegri/PedagogIA2/internal/service"
)

// fakeAccountService implements service.AccountService with function fields.
type fakeAccountService struct {
	RegisterFn func(ctx context.Context, email, displayName, password string) (*domain.Account, error)
	LoginFn    func(ctx context.Context, email, password string) (bool, error)
}

func (f *fakeAccountService) Register(ctx context.Context, email, displayName, password string) (*domain.Account, error) {
	return f.RegisterFn(ctx, email, displayName, password)
}

func (f *fakeAccountService) Login(ctx context.Context, email, password string) (bool, error) {
	return f.LoginFn(ctx, email, password)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestAuthHandlerRegister(t *testing.T) {
	t.Parallel()

	t.Run("successful registration returns 201", func(t *testing.T) {
		t.Parallel()
		svc := &fakeAccountService{
			RegisterFn: func(ctx context.Context, email, displayName, password string) (*domain.Account, error) {
				return &domain.Account{Email: email, DisplayName: displayName}, nil
			},
		}
		handler := api.NewAuthHandler(svc)

		w := postJSON(t, handler.Register, "/api/auth/register", api.RegisterRequest{
			Email:       "a@x.com",
			DisplayName: "Ann",
			Password:    "pw1",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp api.RegisterResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "a@x.com", resp.Email)
		assert.Equal(t, "Ann", resp.DisplayName)
	})

	t.Run("unlisted email returns 403", func(t *testing.T) {
		t.Parallel()
		svc := &fakeAccountService{
			RegisterFn: func(ctx context.Context, email, displayName, password string) (*domain.Account, error) {
				return nil, service.ErrNotAuthorized
			},
		}
		handler := api.NewAuthHandler(svc)

		w := postJSON(t, handler.Register, "/api/auth/register", api.RegisterRequest{
			Email:       "stranger@example.com",
			DisplayName: "Stranger",
			Password:    "password",
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "not authorized")
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		t.Parallel()
		svc := &fakeAccountService{
			RegisterFn: func(ctx context.Context, email, displayName, password string) (*domain.Account, error) {
				return nil, service.ErrAlreadyRegistered
			},
		}
		handler := api.NewAuthHandler(svc)

		w := postJSON(t, handler.Register, "/api/auth/register", api.RegisterRequest{
			Email:       "taken@example.com",
			DisplayName: "Taken",
			Password:    "password",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		t.Parallel()
		handler := api.NewAuthHandler(&fakeAccountService{})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		handler.Register(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid email shape returns 400 before the service", func(t *testing.T) {
		t.Parallel()
		handler := api.NewAuthHandler(&fakeAccountService{
			RegisterFn: func(ctx context.Context, email, displayName, password string) (*domain.Account, error) {
				t.Fatal("service must not be called for invalid input")
				return nil, nil
			},
		})

		w := postJSON(t, handler.Register, "/api/auth/register", api.RegisterRequest{
			Email:       "not-an-email",
			DisplayName: "Bad",
			Password:    "password",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage fault returns 500", func(t *testing.T) {
		t.Parallel()
		svc := &fakeAccountService{
			RegisterFn: func(ctx context.Context, email, displayName, password string) (*domain.Account, error) {
				return nil, errors.New("db exploded")
			},
		}
		handler := api.NewAuthHandler(svc)

		w := postJSON(t, handler.Register, "/api/auth/register", api.RegisterRequest{
			Email:       "a@x.com",
			DisplayName: "Ann",
			Password:    "pw1",
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db exploded",
			"internal details never reach the client")
	})
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials return 200", func(t *testing.T) {
		t.Parallel()
		svc := &fakeAccountService{
			LoginFn: func(ctx context.Context, email, password string) (bool, error) {
				return true, nil
			},
		}
		handler := api.NewAuthHandler(svc)

		w := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
			Email:    "a@x.com",
			Password: "pw1",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp api.LoginResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.OK)
		assert.Equal(t, "a@x.com", resp.Email)
	})

	t.Run("failed verification returns 401", func(t *testing.T) {
		t.Parallel()
		svc := &fakeAccountService{
			LoginFn: func(ctx context.Context, email, password string) (bool, error) {
				return false, nil
			},
		}
		handler := api.NewAuthHandler(svc)

		w := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
			Email:    "a@x.com",
			Password: "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("storage fault returns 500", func(t *testing.T) {
		t.Parallel()
		svc := &fakeAccountService{
			LoginFn: func(ctx context.Context, email, password string) (bool, error) {
				return false, errors.New("db down")
			},
		}
		handler := api.NewAuthHandler(svc)

		w := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
			Email:    "a@x.com",
			Password: "pw1",
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("missing password returns 400", func(t *testing.T) {
		t.Parallel()
		handler := api.NewAuthHandler(&fakeAccountService{})

		w := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
			Email: "a@x.com",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
