package record

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"linkboard/internal/domain/record"
)

type Handler struct {
	service    record.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service record.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.detailOp(), h.detail)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.searchOp(), h.search)
	huma.Register(api, h.likeOp(), h.like)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	views, err := h.service.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return &listOutput{
		Body: listResponse{Data: views},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	view, err := h.service.Create(ctx, input.RawBody)
	if err != nil {
		return nil, mapError(err)
	}

	return &createOutput{
		Body: createResponse{
			Status:  http.StatusOK,
			Message: "Data inserted successfully",
			Data:    view,
		},
	}, nil
}

func (h *Handler) detail(ctx context.Context, input *detailInput) (*detailOutput, error) {
	view, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return &detailOutput{
		Body: detailResponse{
			Status:  http.StatusOK,
			Message: "Get detail successfully",
			Data:    view,
		},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*statusOutput, error) {
	if err := h.service.Update(ctx, input.ID, input.RawBody); err != nil {
		return nil, mapError(err)
	}

	return &statusOutput{
		Body: statusResponse{
			Status:  http.StatusOK,
			Message: "Data updated successfully",
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*statusOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, mapError(err)
	}

	return &statusOutput{
		Body: statusResponse{
			Status:  http.StatusOK,
			Message: "Data deleted successfully",
		},
	}, nil
}

func (h *Handler) search(ctx context.Context, input *searchInput) (*listOutput, error) {
	views, err := h.service.Search(ctx, input.Search)
	if err != nil {
		return nil, mapError(err)
	}

	return &listOutput{
		Body: listResponse{Data: views},
	}, nil
}

func (h *Handler) like(ctx context.Context, input *likeInput) (*statusOutput, error) {
	if err := h.service.Like(ctx, input.ID); err != nil {
		return nil, mapError(err)
	}

	return &statusOutput{
		Body: statusResponse{
			Status:  http.StatusOK,
			Message: "Add like successfully",
		},
	}, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, record.ErrInvalidID), errors.Is(err, record.ErrInvalidPayload):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, record.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	default:
		// Store failures and incomplete documents discovered at read time.
		return huma.Error500InternalServerError(err.Error())
	}
}
