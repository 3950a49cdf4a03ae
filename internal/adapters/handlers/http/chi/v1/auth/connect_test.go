package auth_test

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	httpgo "net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/handlers/http/chi"
	authhandler "github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/handlers/http/chi/v1/auth"
	fileshandler "github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/handlers/http/chi/v1/files"
	usershandler "github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/handlers/http/chi/v1/users"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/domain"
	authservice "github.com/bcart01v/atlas-atlas-files-manager/internal/core/service/auth"
	fileservice "github.com/bcart01v/atlas-atlas-files-manager/internal/core/service/file"
)

func newTestRouter(authService *authservice.MockAuthService) httpgo.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authHandler := authhandler.NewAuthHandlerV1(authService, discardLogger)
	usersHandler := usershandler.NewUsersHandlerV1(authService, discardLogger)
	filesHandler := fileshandler.NewFilesHandlerV1(fileservice.NewMockFileService(), discardLogger)
	return chi.NewRouter(discardLogger, authService, authHandler, usersHandler, filesHandler, nil, "")
}

func basicAuth(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

func TestConnectV1(t *testing.T) {

	t.Run("nominal", func(t *testing.T) {

		//Arrange
		mockAuthService := authservice.NewMockAuthService()
		token := uuid.NewString()
		mockAuthService.On("Authenticate", mock.Anything, "bob@dylan.com", "toto1234!").Return(token, nil)

		h := newTestRouter(mockAuthService)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/connect", nil)
		req.Header.Set("Authorization", basicAuth("bob@dylan.com", "toto1234!"))

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusOK, w.Code)
		var resp authhandler.V1ConnectResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, token, resp.Token)
		mockAuthService.AssertExpectations(t)
	})

	t.Run("missing authorization header", func(t *testing.T) {

		//Arrange
		mockAuthService := authservice.NewMockAuthService()
		h := newTestRouter(mockAuthService)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/connect", nil)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusUnauthorized, w.Code)
		mockAuthService.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed base64", func(t *testing.T) {

		//Arrange
		mockAuthService := authservice.NewMockAuthService()
		h := newTestRouter(mockAuthService)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/connect", nil)
		req.Header.Set("Authorization", "Basic not-base64!!!")

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusUnauthorized, w.Code)
		mockAuthService.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("wrong credentials", func(t *testing.T) {

		//Arrange
		mockAuthService := authservice.NewMockAuthService()
		mockAuthService.On("Authenticate", mock.Anything, "bob@dylan.com", "wrong").Return("", domain.ErrInvalidCredentials)

		h := newTestRouter(mockAuthService)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/connect", nil)
		req.Header.Set("Authorization", basicAuth("bob@dylan.com", "wrong"))

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusUnauthorized, w.Code)
		mockAuthService.AssertExpectations(t)
	})

	t.Run("password containing a colon", func(t *testing.T) {

		//Arrange
		mockAuthService := authservice.NewMockAuthService()
		token := uuid.NewString()
		mockAuthService.On("Authenticate", mock.Anything, "bob@dylan.com", "to:to:12").Return(token, nil)

		h := newTestRouter(mockAuthService)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/connect", nil)
		req.Header.Set("Authorization", basicAuth("bob@dylan.com", "to:to:12"))

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusOK, w.Code)
		mockAuthService.AssertExpectations(t)
	})
}

func TestDisconnectV1(t *testing.T) {

	t.Run("nominal", func(t *testing.T) {

		//Arrange
		mockAuthService := authservice.NewMockAuthService()
		token := uuid.NewString()
		userID := uuid.New()
		mockAuthService.On("ValidateSession", mock.Anything, token).Return(userID, nil)
		mockAuthService.On("Revoke", mock.Anything, token).Return(nil)

		h := newTestRouter(mockAuthService)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/disconnect", nil)
		req.Header.Set("X-Token", token)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusNoContent, w.Code)
		mockAuthService.AssertExpectations(t)
	})

	t.Run("missing token", func(t *testing.T) {

		//Arrange
		mockAuthService := authservice.NewMockAuthService()
		h := newTestRouter(mockAuthService)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/disconnect", nil)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusUnauthorized, w.Code)
		mockAuthService.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
	})

	t.Run("unknown token", func(t *testing.T) {

		//Arrange
		mockAuthService := authservice.NewMockAuthService()
		token := uuid.NewString()
		mockAuthService.On("ValidateSession", mock.Anything, token).Return(uuid.Nil, domain.ErrInvalidToken)

		h := newTestRouter(mockAuthService)
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/disconnect", nil)
		req.Header.Set("X-Token", token)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusUnauthorized, w.Code)
		mockAuthService.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
	})
}
