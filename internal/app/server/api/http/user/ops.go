package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) joinOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-join",
		Method:      http.MethodPost,
		Path:        "/join",
		Summary:     "Register a user",
		Description: "Validates first_name, last_name, email and password, hashes the password and stores the user. Extra fields are kept as-is.",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}
