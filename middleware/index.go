package middleware

import (
	"campus_cms/apperr"
	"campus_cms/constants"
	"campus_cms/helper"
	"campus_cms/utils"
	"errors"
	"strings"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// Protected decodes the session token from the access_token cookie or the
// Authorization header, re-hydrates the live account to confirm it is still
// active, and stashes the claims in Locals. Capability flags keep their
// issuance-time snapshot semantics; active state is never snapshotted, so
// deactivating an account cuts off every route immediately. Handlers that
// mutate permissions must go through RequireLiveCapability instead of
// trusting the claims.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		claims, err := helper.DecodeToken(token)
		if err != nil {
			return utils.AppError(c, err)
		}

		c.Locals("claims", claims)

		if _, err := helper.GetLiveAccount(c); err != nil {
			return utils.AppError(c, err)
		}
		return c.Next()
	}
}

// RequireCapability gates a route on the session snapshot. Fine for reads;
// the accepted staleness window is bounded by token expiry.
func RequireCapability(capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := helper.GetClaims(c)
		if !ok {
			return utils.AppError(c, apperr.Authentication(constants.INVALID_SESSION))
		}
		if !helper.Can(claims, capability) {
			return utils.AppError(c, apperr.Authorization(constants.ACCOUNT_NOT_PERMISSION))
		}
		return c.Next()
	}
}

// RequireLiveCapability re-fetches the acting account and checks its current
// flags. Used for irreversible or security-sensitive operations so a
// revocation takes effect before token expiry.
func RequireLiveCapability(capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		account, err := helper.GetLiveAccount(c)
		if err != nil {
			return utils.AppError(c, err)
		}
		if !helper.CanAccount(account, capability) {
			return utils.AppError(c, apperr.Authorization(constants.ACCOUNT_NOT_PERMISSION))
		}
		c.Locals("actingAccount", account)
		return c.Next()
	}
}

// WebsocketUpgrade rejects plain HTTP requests on websocket routes after the
// auth middlewares have run.
func WebsocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}
