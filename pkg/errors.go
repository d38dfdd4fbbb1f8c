package pkg

import "fmt"

// AppError is a domain error enriched with the HTTP status handlers should
// respond with. Usecases return plain sentinel errors; handlers map them to
// AppError at the edge.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON error body rendered to clients. The wrapped cause is
// intentionally left out of the response.
type HTTPError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}

// ToHTTPErrorWithFields attaches per-field validation messages, used by
// endpoints that render inline form errors.
func (e *AppError) ToHTTPErrorWithFields(fields map[string]string) HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Fields: fields}
}
