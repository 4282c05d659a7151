package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"linkboard/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.joinOp(), h.join)
}

func (h *Handler) join(ctx context.Context, input *joinInput) (*joinOutput, error) {
	if err := h.service.Register(ctx, input.RawBody); err != nil {
		return nil, mapError(err)
	}

	return &joinOutput{
		Body: joinResponse{
			Status:  http.StatusOK,
			Message: "User added successfully",
		},
	}, nil
}

func mapError(err error) error {
	var validationErr *user.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, user.ErrInvalidPayload):
		return huma.Error400BadRequest(err.Error())
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}
