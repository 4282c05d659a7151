package record

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-list",
		Method:      http.MethodGet,
		Path:        "/data",
		Summary:     "List every record",
		Description: "Returns all records in insertion order. No pagination.",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-create",
		Method:      http.MethodPost,
		Path:        "/create",
		Summary:     "Create a record",
		Description: "Accepts any JSON object; created_at is stamped by the service.",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) detailOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-detail",
		Method:      http.MethodGet,
		Path:        "/detail",
		Summary:     "Get one record",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-update",
		Method:      http.MethodPut,
		Path:        "/update",
		Summary:     "Update a record",
		Description: "Partial merge: only the fields present in the body change.",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-delete",
		Method:      http.MethodDelete,
		Path:        "/delete",
		Summary:     "Delete a record",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) searchOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-search",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Search records by title",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) likeOp() huma.Operation {
	return huma.Operation{
		OperationID: "records-like",
		Method:      http.MethodPut,
		Path:        "/like",
		Summary:     "Increment a record's like counter",
		Tags:        []string{"records"},
		Middlewares: h.middleware,
	}
}
