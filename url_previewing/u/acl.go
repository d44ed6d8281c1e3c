package u

import (
	"fmt"
	"net"

	"github.com/scoophq/scoop/common"
	"github.com/scoophq/scoop/common/rcontext"
)

func getSafeAddress(addr string, ctx rcontext.RequestContext) (net.IP, string, error) {
	ctx.Log.Debug("Checking address: " + addr)
	realHost, p, err := net.SplitHostPort(addr)
	if err != nil {
		ctx.Log.Debug("Error parsing host and port: ", err)
		realHost = addr
	}

	ipAddr := net.IPv4(127, 0, 0, 1)
	if realHost != "localhost" {
		if literal := net.ParseIP(realHost); literal != nil {
			ipAddr = literal
		} else {
			addrs, err := net.DefaultResolver.LookupIPAddr(ctx, realHost)
			if err != nil {
				ctx.Log.Debug("Error looking up DNS record for preview: ", err)
				return nil, "", fmt.Errorf("%w: %v", common.ErrHostNotFound, err)
			}
			if len(addrs) == 0 {
				return nil, "", common.ErrHostNotFound
			}
			ipAddr = addrs[0].IP
		}
	}

	allowedCidrs := ctx.Config.UrlPreviews.AllowedNetworks
	if allowedCidrs == nil {
		allowedCidrs = []string{"0.0.0.0/0", "::/0"}
	}
	deniedCidrs := make([]string, 0, len(ctx.Config.UrlPreviews.DisallowedNetworks)+2)
	deniedCidrs = append(deniedCidrs, ctx.Config.UrlPreviews.DisallowedNetworks...)

	// Forcefully append 0.0.0.0 and :: because they are unroutable and resolve to localhost
	deniedCidrs = append(deniedCidrs, "0.0.0.0/32")
	deniedCidrs = append(deniedCidrs, "::/128")

	if !isAllowed(ipAddr, allowedCidrs, deniedCidrs, ctx) {
		return nil, "", common.ErrHostNotAllowed
	}
	return ipAddr, p, nil
}

func isAllowed(ip net.IP, allowed []string, disallowed []string, ctx rcontext.RequestContext) bool {
	// The deny list is usually much shorter, so check it first
	if inRange(ip, disallowed, ctx) {
		ctx.Log.Debug("Host found on deny list - rejecting")
		return false
	}

	if inRange(ip, allowed, ctx) {
		ctx.Log.Debug("Host allowed due to allow list")
		return true
	}

	ctx.Log.Debug("Host is not on either allow list or deny list, considering deny listed")
	return false
}

func inRange(ip net.IP, cidrs []string, ctx rcontext.RequestContext) bool {
	for _, cidr := range cidrs {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			ctx.Log.Warn("Error parsing network from config: ", err)
			continue
		}
		if network.Contains(ip) {
			return true
		}
	}

	return false
}
