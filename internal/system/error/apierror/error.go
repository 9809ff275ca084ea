// Package apierror defines the error body written to HTTP clients.
package apierror

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Code          string `json:"error"`
	Description   string `json:"error_description"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

func NewErrorResponse(code, description string) *ErrorResponse {
	return &ErrorResponse{
		Code:        code,
		Description: description,
	}
}

// WithCorrelationID tags the response with the request's correlation ID so
// clients can quote it when reporting a failure.
func (e *ErrorResponse) WithCorrelationID(correlationID string) *ErrorResponse {
	e.CorrelationID = correlationID
	return e
}
