package web

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/oncall-relay/oncall-relay/internal/config"
)

const bearerPrefix = "Bearer "

// APIKeyMiddleware guards the event endpoint with the configured static key.
// The probe and scrape endpoints stay open. A bad key is the only non-200 the
// event endpoint produces: the key check is transport-level, not an operation
// outcome.
func APIKeyMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if path == CheckAlivePath || path == MetricsPath {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			log.Warn().Str("IP", c.IP()).Msg("missing bearer key on inbound request")
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		key := strings.TrimPrefix(header, bearerPrefix)
		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.Webserver.APIKey)) != 1 {
			log.Warn().Str("IP", c.IP()).Msg("invalid bearer key on inbound request")
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		return c.Next()
	}
}
