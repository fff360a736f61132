package pkg

import "fmt"

// AppError is the error envelope returned by the HTTP layer.
type AppError struct {
	Code        string
	Message     string
	Err         error
	HTTPStatus  int
	Suggestions []string
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

// WithSuggestions returns a copy carrying user-facing next steps.
func (e *AppError) WithSuggestions(suggestions []string) *AppError {
	out := *e
	out.Suggestions = append([]string(nil), suggestions...)
	return &out
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Suggestions: e.Suggestions}
}
