package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/didip/tollbooth"
	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/scoophq/scoop/common/config"
	"github.com/scoophq/scoop/limits"
	"github.com/sirupsen/logrus"
)

var srv *http.Server
var waitGroup = &sync.WaitGroup{}
var lock = &sync.Mutex{}

// BuildHandler assembles the full handler stack: routes, rate limiting and Sentry.
func BuildHandler() http.Handler {
	handler := buildRoutes()

	if config.Get().RateLimit.Enabled {
		logrus.Debug("Enabling rate limit")
		handler = tollbooth.LimitHandler(limits.NewRequestLimiter(config.Get().RateLimit), handler)
	}

	// Note: we bind Sentry here to ensure we capture *everything*
	sentryHandler := sentryhttp.New(sentryhttp.Options{})
	return sentryHandler.Handle(handler)
}

// Init starts the listener. The returned wait group is released by Stop.
func Init() *sync.WaitGroup {
	lock.Lock()
	defer lock.Unlock()
	waitGroup.Add(1)
	start()
	return waitGroup
}

func start() {
	address := net.JoinHostPort(config.Get().General.BindAddress, strconv.Itoa(config.Get().General.Port))
	s := &http.Server{
		Addr:              address,
		Handler:           BuildHandler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv = s

	go func() {
		//goland:noinspection HttpUrlsUsage
		logrus.WithField("address", address).Info("Started up. Listening at http://" + address)
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			sentry.CaptureException(err)
			logrus.Fatal(err)
		}
	}()
}

func shutdown() {
	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logrus.Error("Error shutting down web server: ", err)
		}
		srv = nil
	}
}

func Reload() {
	lock.Lock()
	defer lock.Unlock()
	if srv == nil {
		return
	}
	shutdown()
	start()
}

func Stop() {
	lock.Lock()
	defer lock.Unlock()
	if srv == nil {
		return
	}
	shutdown()
	waitGroup.Done()
}
