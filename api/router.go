package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	"github.com/scoophq/scoop/api/_responses"
	"github.com/scoophq/scoop/api/_routers"
	"github.com/scoophq/scoop/util"
	"github.com/sirupsen/logrus"
)

func buildPrimaryRouter() *mux.Router {
	router := mux.NewRouter()
	router.StrictSlash(false)
	router.MethodNotAllowedHandler = _routers.NewInstallHeadersRouter(http.HandlerFunc(methodNotAllowedFn))
	router.NotFoundHandler = _routers.NewInstallHeadersRouter(http.HandlerFunc(notFoundFn))
	return router
}

func writeJsonError(w http.ResponseWriter, status int, res *_responses.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	b, err := json.Marshal(res)
	if err != nil {
		sentry.CaptureException(fmt.Errorf("error preparing error response: %v", err))
		logrus.Errorf("error preparing error response: %v", err)
		return
	}
	_, _ = w.Write(b)
}

func methodNotAllowedFn(w http.ResponseWriter, r *http.Request) {
	writeJsonError(w, http.StatusMethodNotAllowed, _responses.MethodNotAllowed())
}

func notFoundFn(w http.ResponseWriter, r *http.Request) {
	writeJsonError(w, http.StatusNotFound, _responses.NotFoundError())
}

func finishCorsFn(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

type panicRecoveryRouter struct {
	next http.Handler
}

func (p *panicRecoveryRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if i := recover(); i != nil {
			panicFn(w, r, i)
		}
	}()
	p.next.ServeHTTP(w, r)
}

func panicFn(w http.ResponseWriter, r *http.Request, i interface{}) {
	logrus.WithField("requestId", _routers.GetRequestId(r)).Errorf("Panic received on %s %s: %s", r.Method, util.GetLogSafeUrl(r), i)

	//goland:noinspection GoTypeAssertionOnErrors
	if e, ok := i.(error); ok {
		sentry.CaptureException(e)
	} else {
		sentry.CaptureMessage(fmt.Sprintf("Unknown panic received: %T %s %+v", i, i, i))
	}

	writeJsonError(w, http.StatusInternalServerError, _responses.InternalServerError("unexpected error"))
}
