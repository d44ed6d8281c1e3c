package common

type ScoopContextKey string

const (
	ContextLogger     ScoopContextKey = "scoop.logger"
	ContextAction     ScoopContextKey = "scoop.action"
	ContextRequest    ScoopContextKey = "scoop.request"
	ContextRequestId  ScoopContextKey = "scoop.request_id"
	ContextConfig     ScoopContextKey = "scoop.config"
	ContextStatusCode ScoopContextKey = "scoop.status_code"
)
