package _routers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/scoophq/scoop/common"
	"github.com/scoophq/scoop/util"
	"github.com/sirupsen/logrus"
)

const startTimeCtxKey = common.ScoopContextKey("scoop.start_time")

type InstallMetadataRouter struct {
	next       http.Handler
	actionName string
}

func NewInstallMetadataRouter(actionName string, next http.Handler) *InstallMetadataRouter {
	return &InstallMetadataRouter{
		next:       next,
		actionName: actionName,
	}
}

func (i *InstallMetadataRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestId := "REQ-" + uuid.NewString()
	logger := logrus.WithFields(logrus.Fields{
		"method":      r.Method,
		"host":        r.Host,
		"resource":    r.URL.Path,
		"queryString": util.GetLogSafeQueryString(r),
		"requestId":   requestId,
		"remoteAddr":  r.RemoteAddr,
		"userAgent":   r.UserAgent(),
	})

	ctx := r.Context()
	ctx = context.WithValue(ctx, common.ContextRequestId, requestId)
	ctx = context.WithValue(ctx, common.ContextAction, i.actionName)
	ctx = context.WithValue(ctx, common.ContextLogger, logger)
	ctx = context.WithValue(ctx, startTimeCtxKey, time.Now())
	r = r.WithContext(ctx)

	w.Header().Set("X-Request-Id", requestId)

	if i.next != nil {
		i.next.ServeHTTP(w, r)
	}
}

func GetActionName(r *http.Request) string {
	x, ok := r.Context().Value(common.ContextAction).(string)
	if !ok {
		return "<UNKNOWN>"
	}
	return x
}

func GetRequestId(r *http.Request) string {
	x, ok := r.Context().Value(common.ContextRequestId).(string)
	if !ok {
		return ""
	}
	return x
}

func GetLogger(r *http.Request) *logrus.Entry {
	x, ok := r.Context().Value(common.ContextLogger).(*logrus.Entry)
	if !ok {
		return logrus.WithField("requestId", "<none>")
	}
	return x
}

func GetRequestDuration(r *http.Request) float64 {
	x, ok := r.Context().Value(startTimeCtxKey).(time.Time)
	if !ok {
		return -1
	}
	return time.Since(x).Seconds()
}
