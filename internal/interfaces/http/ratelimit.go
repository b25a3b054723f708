package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/pkg/logger"
)

// limiterIdleTTL tiempo sin uso tras el cual se descarta el limitador de una IP.
const limiterIdleTTL = 10 * time.Minute

type ipLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limita peticiones por IP con un token bucket por cliente.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	rate     rate.Limit
	burst    int
	log      *logger.Logger
	now      func() time.Time
}

// NewRateLimiter perMinute peticiones sostenidas por minuto; burst ráfaga permitida.
func NewRateLimiter(perMinute, burst int, log *logger.Logger) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	r := rate.Inf
	if perMinute > 0 {
		r = rate.Every(time.Minute / time.Duration(perMinute))
	}
	return &RateLimiter{
		limiters: make(map[string]*ipLimiter),
		rate:     r,
		burst:    burst,
		log:      log.Component("ratelimit"),
		now:      time.Now,
	}
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for k, l := range rl.limiters {
		if now.Sub(l.lastSeen) > limiterIdleTTL {
			delete(rl.limiters, k)
		}
	}
	l, ok := rl.limiters[key]
	if !ok {
		l = &ipLimiter{lim: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = l
	}
	l.lastSeen = now
	return l.lim
}

// Handler middleware Fiber; responde 429 con el contrato {error} de /api/ocr.
func (rl *RateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.IP()
		if !rl.get(ip).Allow() {
			rl.log.Warn().Str("ip", ip).Str("path", c.Path()).Msg("límite de peticiones excedido")
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.OCRErrorResponse{
				Error: "Demasiadas solicitudes. Intenta de nuevo en un momento.",
			})
		}
		return c.Next()
	}
}
