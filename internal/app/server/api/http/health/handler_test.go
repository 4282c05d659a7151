package health

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestHandler_HealthCheck(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h := NewHandler(fakePinger{}, slog.Default(), nil)

		resp, err := h.healthCheck(context.Background(), &Input{})
		require.NoError(t, err)
		assert.Equal(t, "OK", resp.Body.Status)
	})

	t.Run("Error_StoreUnavailable", func(t *testing.T) {
		h := NewHandler(fakePinger{err: errors.New("connection refused")}, slog.Default(), nil)

		_, err := h.healthCheck(context.Background(), &Input{})
		require.Error(t, err)

		se, ok := err.(huma.StatusError)
		require.True(t, ok)
		assert.Equal(t, http.StatusServiceUnavailable, se.GetStatus())
	})
}
