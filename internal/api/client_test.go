package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zap.NewNop())
}

func TestClient_Login(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		assert.Empty(t, r.Header.Get("Authorization"), "login is unauthenticated")

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nikhh", req.Username)

		json.NewEncoder(w).Encode(map[string]any{
			"ok": true,
			"tokens": map[string]string{
				"access":  "acc-token",
				"refresh": "ref-token",
			},
			"user": map[string]any{"id": 7, "username": "nikhh"},
		})
	})

	resp, err := client.Login(context.Background(), LoginRequest{Username: "nikhh", Password: "123456"})
	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, "acc-token", resp.Tokens.Access)
	require.NotNil(t, resp.User)
	assert.Equal(t, int64(7), resp.User.ID)
}

func TestClient_BearerToken(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer acc-token", r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	})

	_, err := client.MyEnquiries(context.Background(), "acc-token")
	require.NoError(t, err)
}

func TestClient_Unauthorized(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "token expired"}`))
	})

	_, err := client.MyEnquiries(context.Background(), "stale")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestDecodeError_Partition(t *testing.T) {
	t.Run("existence conflicts split from field errors", func(t *testing.T) {
		body := `{
			"username": "A user with that username already exists.",
			"email": ["user with this email already exists"],
			"mobile_number": "Mobile number must be 10 digits"
		}`
		err := decodeError(http.StatusBadRequest, []byte(body))

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Len(t, apiErr.Existence, 2)
		assert.Equal(t, map[string]string{
			"mobile_number": "Mobile number must be 10 digits",
		}, apiErr.Fields)
		assert.True(t, apiErr.HasFieldErrors())
	})

	t.Run("username validation error is not a conflict", func(t *testing.T) {
		body := `{"username": "Username must be at least 3 characters"}`
		err := decodeError(http.StatusBadRequest, []byte(body))

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Empty(t, apiErr.Existence)
		assert.Contains(t, apiErr.Fields, "username")
	})

	t.Run("message key becomes the general text", func(t *testing.T) {
		body := `{"message": "Service unavailable, try later"}`
		err := decodeError(http.StatusServiceUnavailable, []byte(body))

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Service unavailable, try later", apiErr.Message)
		assert.False(t, apiErr.HasFieldErrors())
	})

	t.Run("unparseable body falls back to status text", func(t *testing.T) {
		err := decodeError(http.StatusInternalServerError, []byte("<html>boom</html>"))

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
	})
}

func TestError_FieldErrors(t *testing.T) {
	apiErr := &Error{Status: 400, Fields: map[string]string{"email": "Invalid email format"}}

	var fe interface{ FieldErrors() map[string]string }
	require.ErrorAs(t, error(apiErr), &fe)
	assert.Equal(t, "Invalid email format", fe.FieldErrors()["email"])
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "No tutors yet", UserMessage(&Error{Status: 404, Message: "No tutors yet"}))
	assert.Equal(t, "plain failure", UserMessage(errors.New("plain failure")))
	assert.Equal(t, "Something went wrong. Please try again.", UserMessage(nil))
}

func TestClient_CancelEnquiry(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/enquiry/42/cancel", r.URL.Path)
		w.Write([]byte(`{"ok": true}`))
	})

	err := client.CancelEnquiry(context.Background(), "tok", 42)
	require.NoError(t, err)
}
