package debug

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"net/http/pprof"

	"github.com/gorilla/mux"
)

const mount = "/api"
const prefix = mount + "/debug"

func BindPprofEndpoints(router *mux.Router, secret string) {
	router.Handle(prefix+"/pprof/", pprofServe(pprof.Index, secret)).Methods(http.MethodGet)
	for _, name := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
		router.Handle(prefix+"/pprof/"+name, pprofServe(pprof.Index, secret)).Methods(http.MethodGet)
	}
	router.Handle(prefix+"/pprof/cmdline", pprofServe(pprof.Cmdline, secret)).Methods(http.MethodGet)
	router.Handle(prefix+"/pprof/profile", pprofServe(pprof.Profile, secret)).Methods(http.MethodGet)
	router.Handle(prefix+"/pprof/trace", pprofServe(pprof.Trace, secret)).Methods(http.MethodGet)
}

type generatorFn = func(w http.ResponseWriter, r *http.Request)

type requestContainer struct {
	secret string
	fn     generatorFn
}

func pprofServe(fn generatorFn, secret string) http.Handler {
	return &requestContainer{
		secret: secret,
		fn:     fn,
	}
}

func (c *requestContainer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	auth := r.Header.Get("Authorization")
	if subtle.ConstantTimeCompare([]byte(auth), []byte("Bearer "+c.secret)) != 1 {
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
		return
	}

	// pprof.Index resolves the profile name from the path
	r.URL.Path = r.URL.Path[len(mount):]
	c.fn(w, r)
}
