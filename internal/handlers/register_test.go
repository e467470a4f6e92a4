package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-app-catalog/internal/apperrors"
	"github.com/sbilibin2017/gw-app-catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		reqBody      RegisterRequest
		rawBody      string // if set, sent instead of reqBody
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedErr  *models.ErrorResponse
	}{
		{
			name:    "success",
			reqBody: RegisterRequest{Username: "john", Email: "john@example.com", Password: "secret123", Terms: true},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "secret123", true).
					Return(&models.User{ID: userID, Username: "john", Email: "john@example.com", PasswordHash: "$2a$hash"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "user already exists",
			reqBody: RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret123", false).
					Return(nil, apperrors.Conflict("username already taken"))
			},
			expectedCode: http.StatusConflict,
			expectedErr:  &models.ErrorResponse{Error: "username already taken", Code: apperrors.CodeConflict},
		},
		{
			name:    "validation error",
			reqBody: RegisterRequest{Username: "al", Email: "alice@example.com", Password: "secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "al", "alice@example.com", "secret123", false).
					Return(nil, apperrors.Validation("username is too short"))
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  &models.ErrorResponse{Error: "username is too short", Code: apperrors.CodeValidation},
		},
		{
			name:    "internal server error",
			reqBody: RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "bob@example.com", "secret123", false).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  &models.ErrorResponse{Error: "internal server error", Code: apperrors.CodeInternal},
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedErr:  &models.ErrorResponse{Error: "invalid request body", Code: apperrors.CodeValidation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			body := []byte(tt.rawBody)
			if tt.rawBody == "" {
				body, _ = json.Marshal(tt.reqBody)
			}
			req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewBuffer(body))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			if tt.expectedErr != nil {
				var resp models.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, *tt.expectedErr, resp)
				return
			}

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, userID.String(), resp["id"])
			assert.Equal(t, "john", resp["username"])
			assert.NotContains(t, resp, "password")
			assert.NotContains(t, rr.Body.String(), "$2a$hash")
		})
	}
}
