package common

const ErrCodeHostNotAllowed = "S_HOST_NOT_ALLOWED"
const ErrCodeNotFound = "S_NOT_FOUND"
const ErrCodeMethodNotAllowed = "S_METHOD_NOT_ALLOWED"
const ErrCodeBadRequest = "S_BAD_REQUEST"
const ErrCodeUpstream = "S_UPSTREAM"
const ErrCodeRateLimitExceeded = "S_LIMIT_EXCEEDED"
const ErrCodeUnknown = "S_UNKNOWN"
