package api

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/scoophq/scoop/api/_routers"
	"github.com/scoophq/scoop/api/custom"
	"github.com/scoophq/scoop/api/debug"
	"github.com/scoophq/scoop/api/v1"
	"github.com/sirupsen/logrus"
)

const PrefixApi = "/api"

func buildRoutes() http.Handler {
	router := buildPrimaryRouter()

	pprofSecret := os.Getenv("SCOOP_PPROF_SECRET_KEY")
	if pprofSecret != "" {
		logrus.Warn("Enabling pprof/debug http endpoints")
		debug.BindPprofEndpoints(router, pprofSecret)
	}

	register(router, "preview", makeRoute(v1.PreviewUrl, "url_preview"))
	register(router, "qr", makeRoute(v1.GenerateQr, "qr"))
	register(router, "qr/page", makeRoute(v1.QrPage, "qr_page"))
	register(router, "qr/branded", makeRoute(v1.GenerateBrandedQr, "qr_branded"))
	register(router, "qr/variants", makeRoute(v1.GenerateVariants, "qr_variants"))
	register(router, "utm", makeRoute(v1.BuildUtmUrl, "utm"))
	register(router, "version", makeRoute(custom.GetVersion, "get_version"))

	healthzRoute := makeRoute(custom.GetHealthz, "healthz")
	router.Handle("/healthz", healthzRoute).Methods(http.MethodGet, http.MethodHead)

	return &panicRecoveryRouter{next: router}
}

func makeRoute(generator _routers.GeneratorFn, name string) http.Handler {
	return _routers.NewInstallMetadataRouter(name,
		_routers.NewInstallHeadersRouter(
			_routers.NewRemoteAddressRouter(
				_routers.NewMetricsRequestRouter(
					_routers.NewRContextRouter(generator, _routers.NewMetricsResponseRouter(nil)),
				),
			),
		))
}

var corsRoute = _routers.NewInstallHeadersRouter(http.HandlerFunc(finishCorsFn))

func register(router *mux.Router, postfix string, handler http.Handler) {
	path := PrefixApi + "/" + postfix
	router.Handle(path, handler).Methods(http.MethodGet, http.MethodHead)
	router.Handle(path, corsRoute).Methods(http.MethodOptions)
	logrus.Debug("Registering route: ", path)
}
