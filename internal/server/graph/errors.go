package graph

// Stable machine-readable error codes surfaced in extensions.code.
const (
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeBadUserInput       = "BAD_USER_INPUT"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL_SERVER_ERROR"
)

// ResolverError is a structured resolver failure: a human-readable message
// plus a stable code (and optional diagnostics) carried in the GraphQL
// error extensions. No resolver returns an unstructured error.
type ResolverError struct {
	Code    string
	Message string
	extra   map[string]interface{}
}

func (e *ResolverError) Error() string {
	return e.Message
}

func (e *ResolverError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	for k, v := range e.extra {
		ext[k] = v
	}
	return ext
}

func errUnauthenticated() *ResolverError {
	return &ResolverError{Code: CodeUnauthenticated, Message: "not authenticated"}
}

func errInvalidCredentials() *ResolverError {
	return &ResolverError{Code: CodeInvalidCredentials, Message: "wrong credentials"}
}

func errNotFound(message string) *ResolverError {
	return &ResolverError{Code: CodeNotFound, Message: message}
}

// errBadUserInput reports a store validation failure with the offending
// argument value and the underlying cause for diagnostics.
func errBadUserInput(message string, invalidArg any, cause error) *ResolverError {
	extra := map[string]interface{}{"invalidArgs": invalidArg}
	if cause != nil {
		extra["error"] = cause.Error()
	}
	return &ResolverError{Code: CodeBadUserInput, Message: message, extra: extra}
}

func errInternal() *ResolverError {
	return &ResolverError{Code: CodeInternal, Message: "internal error"}
}
