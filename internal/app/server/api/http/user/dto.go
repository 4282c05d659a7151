package user

type joinInput struct {
	RawBody []byte
}

type joinOutput struct {
	Body joinResponse
}

type joinResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
