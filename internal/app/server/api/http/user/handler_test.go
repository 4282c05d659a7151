package user

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"linkboard/internal/domain/user"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, payload []byte) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	se, ok := err.(huma.StatusError)
	require.True(t, ok, "handler errors must carry a status")
	return se.GetStatus()
}

func TestHandler_Join(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		body := []byte(`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"secret1"}`)
		svc.On("Register", mock.Anything, body).Return(nil)

		resp, err := h.join(context.Background(), &joinInput{RawBody: body})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Body.Status)
		assert.Equal(t, "User added successfully", resp.Body.Message)

		svc.AssertExpectations(t)
	})

	t.Run("Error_Validation", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		svc.On("Register", mock.Anything, mock.Anything).
			Return(&user.ValidationError{Field: "email", Reason: "not a valid email address"})

		_, err := h.join(context.Background(), &joinInput{RawBody: []byte(`{}`)})
		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		svc.On("Register", mock.Anything, mock.Anything).Return(user.ErrEmailTaken)

		_, err := h.join(context.Background(), &joinInput{RawBody: []byte(`{}`)})
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
	})

	t.Run("Error_BadPayload", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, slog.Default(), nil)

		svc.On("Register", mock.Anything, mock.Anything).Return(user.ErrInvalidPayload)

		_, err := h.join(context.Background(), &joinInput{RawBody: []byte("not json")})
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})
}
