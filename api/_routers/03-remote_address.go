package _routers

import (
	"net"
	"net/http"
	"strings"

	"github.com/scoophq/scoop/common/config"
	"github.com/sebest/xff"
)

type RemoteAddressRouter struct {
	next http.Handler
}

func NewRemoteAddressRouter(next http.Handler) *RemoteAddressRouter {
	return &RemoteAddressRouter{next: next}
}

func (h *RemoteAddressRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var raddr string
	if config.Get().General.TrustAnyForward {
		raddr = strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-For"), ",")[0])
	} else {
		raddr = xff.GetRemoteAddr(r)
	}
	if raddr == "" {
		raddr = r.RemoteAddr
	}
	host, _, err := net.SplitHostPort(raddr)
	if err != nil {
		// Already just a host
		host = raddr
	}
	r.RemoteAddr = host

	if h.next != nil {
		h.next.ServeHTTP(w, r)
	}
}
