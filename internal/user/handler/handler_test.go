package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fxledger/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct{ mock.Mock }

func (m *MockService) Register(ctx context.Context, username string) (string, error) {
	args := m.Called(ctx, username)
	return args.String(0), args.Error(1)
}

func (m *MockService) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]string)
	return users, args.Error(1)
}

type errorJSON struct {
	Error string `json:"error"`
}

// --- Register ---

func TestHandler_Register_BadBodies(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: "{"},
		{name: "unknown field", body: `{"username":"alice","admin":true}`},
		{name: "missing username", body: `{}`},
		{name: "too long", body: `{"username":"` + strings.Repeat("a", 65) + `"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(MockService)
			h := NewUserHandler(mockService)

			rr := httptest.NewRecorder()
			h.Register(rr, httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(tc.body)))

			require.Equal(t, http.StatusBadRequest, rr.Code)
			var ej errorJSON
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
			require.NotEmpty(t, ej.Error)
			mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_Register_ServiceErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "blank", err: domain.ErrInvalidUsername, wantCode: http.StatusBadRequest},
		{name: "duplicate", err: fmt.Errorf("failed to register user: %w", domain.ErrUserExists), wantCode: http.StatusConflict},
		{name: "storage", err: errors.New("db down"), wantCode: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(MockService)
			h := NewUserHandler(mockService)
			mockService.On("Register", mock.Anything, " ").Return("", tc.err).Once()

			rr := httptest.NewRecorder()
			h.Register(rr, httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"username":" "}`)))

			require.Equal(t, tc.wantCode, rr.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_Register_Success(t *testing.T) {
	mockService := new(MockService)
	h := NewUserHandler(mockService)
	mockService.On("Register", mock.Anything, "alice").Return("alice", nil).Once()

	rr := httptest.NewRecorder()
	h.Register(rr, httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(`{"username":"alice"}`)))

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var res RegisterResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "alice", res.Username)
	mockService.AssertExpectations(t)
}

// --- List ---

func TestHandler_List(t *testing.T) {
	mockService := new(MockService)
	h := NewUserHandler(mockService)
	mockService.On("List", mock.Anything).Return([]string{"alice", "bob"}, nil).Once()

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/users", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res ListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, []string{"alice", "bob"}, res.Users)
}

func TestHandler_List_Error(t *testing.T) {
	mockService := new(MockService)
	h := NewUserHandler(mockService)
	mockService.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/users", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, "ups, couldn't list users this time", ej.Error)
}
