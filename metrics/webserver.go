package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/scoophq/scoop/common/config"
	"github.com/sirupsen/logrus"
)

var srv *http.Server

func Init() {
	if !config.Get().Metrics.Enabled {
		logrus.Info("Metrics disabled")
		return
	}
	rtr := http.NewServeMux()
	rtr.Handle("/metrics", promhttp.Handler())

	address := net.JoinHostPort(config.Get().Metrics.BindAddress, strconv.Itoa(config.Get().Metrics.Port))
	s := &http.Server{Addr: address, Handler: rtr, ReadHeaderTimeout: 10 * time.Second}
	srv = s
	go func() {
		//goland:noinspection HttpUrlsUsage
		logrus.WithField("address", address).Info("Started metrics listener. Listening at http://" + address)
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()
}

func Reload() {
	Stop()
	Init()
}

func Stop() {
	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logrus.Error("Error shutting down metrics listener: ", err)
		}
		srv = nil
	}
}
