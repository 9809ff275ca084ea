package constants

const (
	AuthorizationHeaderName = "Authorization"
	ContentTypeHeaderName   = "Content-Type"
	CorrelationIDHeaderName = "X-Correlation-ID"
	RequestIDHeaderName     = "X-Request-ID"
	TraceIDHeaderName       = "X-Trace-ID"

	// APIBasePath is the prefix under which every resource is mounted.
	APIBasePath = "/api"

	// IDPathParam is the gin path parameter carrying a resource identifier.
	IDPathParam = "id"
	// SearchQueryParam is the query parameter carrying the search text.
	SearchQueryParam = "query"
)
