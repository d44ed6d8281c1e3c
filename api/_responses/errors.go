package _responses

import "github.com/scoophq/scoop/common"

type ErrorResponse struct {
	Message      string `json:"error"`
	InternalCode string `json:"-"`

	// StatusCode overrides the status derived from InternalCode, for mirrored upstream failures.
	StatusCode int `json:"-"`
}

func InternalServerError(message string) *ErrorResponse {
	return &ErrorResponse{Message: message, InternalCode: common.ErrCodeUnknown}
}

func MethodNotAllowed() *ErrorResponse {
	return &ErrorResponse{Message: "Method Not Allowed", InternalCode: common.ErrCodeMethodNotAllowed}
}

func RateLimitReached() *ErrorResponse {
	return &ErrorResponse{Message: "Rate Limited", InternalCode: common.ErrCodeRateLimitExceeded}
}

func NotFoundError() *ErrorResponse {
	return &ErrorResponse{Message: "Not found", InternalCode: common.ErrCodeNotFound}
}

func BadRequest(message string) *ErrorResponse {
	return &ErrorResponse{Message: message, InternalCode: common.ErrCodeBadRequest}
}

func HostNotAllowed(message string) *ErrorResponse {
	return &ErrorResponse{Message: message, InternalCode: common.ErrCodeHostNotAllowed}
}

// UpstreamError mirrors an upstream client or server error status. Anything
// outside 4xx/5xx is reported as a plain 502.
func UpstreamError(statusCode int, message string) *ErrorResponse {
	if statusCode < 400 || statusCode > 599 {
		statusCode = 0
	}
	return &ErrorResponse{Message: message, InternalCode: common.ErrCodeUpstream, StatusCode: statusCode}
}
