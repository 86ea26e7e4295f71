package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-identity/internal/middlewares"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"github.com/sbilibin2017/gw-identity/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := &models.Identity{UUID: uuid.New(), Role: models.RoleUser}
	pair := &models.TokenPair{AccessToken: "A", RefreshToken: "R"}

	t.Run("redeems", func(t *testing.T) {
		mockSvc := NewMockIssueCodeRedeemer(ctrl)
		mockSvc.EXPECT().RedeemIssueCode(gomock.Any(), "c1").Return(identity, nil)
		mockSvc.EXPECT().IssueTokens(gomock.Any(), identity).Return(pair, nil)

		rr := httptest.NewRecorder()
		NewIssueHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/issue?code=c1", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp models.TokenPair
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, *pair, resp)
	})

	t.Run("used code", func(t *testing.T) {
		mockSvc := NewMockIssueCodeRedeemer(ctrl)
		mockSvc.EXPECT().RedeemIssueCode(gomock.Any(), "c1").Return(nil, services.ErrIssueCodeNotFound)

		rr := httptest.NewRecorder()
		NewIssueHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/issue?code=c1", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("missing code", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewIssueHandler(NewMockIssueCodeRedeemer(ctrl)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/issue", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRefresher)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"refresh_token":"R0"}`,
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().Refresh(gomock.Any(), "R0").Return(&models.TokenPair{AccessToken: "A1", RefreshToken: "R1"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "expired",
			body: `{"refresh_token":"R0"}`,
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().Refresh(gomock.Any(), "R0").Return(nil, services.ErrExpiredToken)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "malformed payload",
			body: `{"refresh_token":"R0"}`,
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().Refresh(gomock.Any(), "R0").Return(nil, services.ErrMalformedPayload)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         `nope`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRefresher(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/token/refresh", bytes.NewBufferString(tt.body))
			NewRefreshHandler(mockSvc).ServeHTTP(rr, req)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	withIdentity := func(req *http.Request) *http.Request {
		ctx := middlewares.WithIdentity(req.Context(), &models.Identity{UUID: id, Role: models.RoleUser})
		return req.WithContext(ctx)
	}

	t.Run("deletes", func(t *testing.T) {
		mockSvc := NewMockUserDeleter(ctrl)
		mockSvc.EXPECT().DeleteUser(gomock.Any(), id).Return(nil)

		rr := httptest.NewRecorder()
		NewDeleteUserHandler(mockSvc).ServeHTTP(rr, withIdentity(httptest.NewRequest(http.MethodDelete, "/users/me", nil)))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("already deleted", func(t *testing.T) {
		mockSvc := NewMockUserDeleter(ctrl)
		mockSvc.EXPECT().DeleteUser(gomock.Any(), id).Return(services.ErrUserNotFound)

		rr := httptest.NewRecorder()
		NewDeleteUserHandler(mockSvc).ServeHTTP(rr, withIdentity(httptest.NewRequest(http.MethodDelete, "/users/me", nil)))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewDeleteUserHandler(NewMockUserDeleter(ctrl)).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/users/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
