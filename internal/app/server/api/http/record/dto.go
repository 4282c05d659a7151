package record

import (
	"linkboard/internal/domain/record"
)

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Data []record.View `json:"data"`
}

type createInput struct {
	RawBody []byte
}

type createOutput struct {
	Body createResponse
}

type createResponse struct {
	Status  int                `json:"status"`
	Message string             `json:"message"`
	Data    *record.CreateView `json:"data"`
}

type detailInput struct {
	ID string `query:"id" example:"662a1b2c3d4e5f6a7b8c9d0e" doc:"Record id"`
}

type detailOutput struct {
	Body detailResponse
}

type detailResponse struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Data    *record.View `json:"data"`
}

type updateInput struct {
	ID      string `query:"id" doc:"Record id"`
	RawBody []byte
}

type deleteInput struct {
	ID string `query:"id" doc:"Record id"`
}

type searchInput struct {
	Search string `query:"search" doc:"Title substring, case-insensitive; empty matches everything"`
}

type likeInput struct {
	ID string `query:"id" doc:"Record id"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
