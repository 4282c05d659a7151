package api

import "github.com/danielgtaylor/huma/v2"

// ErrorEnvelope is the uniform failure shape every endpoint returns:
// {"status": <http status>, "message": "..."}.
type ErrorEnvelope struct {
	code    int
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *ErrorEnvelope) Error() string  { return e.Message }
func (e *ErrorEnvelope) GetStatus() int { return e.code }

func init() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		for _, err := range errs {
			if err == nil {
				continue
			}
			if message == "" {
				message = err.Error()
			} else {
				message = message + ": " + err.Error()
			}
		}
		return &ErrorEnvelope{code: status, Status: status, Message: message}
	}
}
