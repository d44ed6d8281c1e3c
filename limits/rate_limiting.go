package limits

import (
	"encoding/json"
	"time"

	"github.com/didip/tollbooth"
	"github.com/didip/tollbooth/limiter"
	"github.com/scoophq/scoop/api/_responses"
	"github.com/scoophq/scoop/common/config"
)

func NewRequestLimiter(cfg config.RateLimitConfig) *limiter.Limiter {
	requestLimiter := tollbooth.NewLimiter(0, nil)
	requestLimiter.SetIPLookups([]string{"X-Forwarded-For", "X-Real-IP", "RemoteAddr"})
	requestLimiter.SetTokenBucketExpirationTTL(time.Hour)
	requestLimiter.SetBurst(cfg.BurstCount)
	requestLimiter.SetMax(cfg.RequestsPerSecond)

	b, _ := json.Marshal(_responses.RateLimitReached())
	requestLimiter.SetMessage(string(b))
	requestLimiter.SetMessageContentType("application/json")

	return requestLimiter
}
