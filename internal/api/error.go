package api

import "encoding/json"

// fallbackMessage mirrors the generic detail the web client shows when
// the server gives none.
const fallbackMessage = "something went wrong"

// Error is an application-level rejection: the server answered with a
// non-2xx status and (usually) a JSON body carrying a detail message.
// The external contract is the message string; Status is kept so the
// auth gate can recognise credential rejections.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unauthorized reports whether the rejection means the credential is
// no longer valid.
func (e *Error) Unauthorized() bool {
	return e.Status == 401 || e.Status == 403
}

func newError(status int, body []byte) *Error {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}

	message := fallbackMessage
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Detail != "":
			message = payload.Detail
		case payload.Message != "":
			message = payload.Message
		}
	}

	return &Error{Status: status, Message: message}
}
