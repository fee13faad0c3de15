package customer

import (
	"go.uber.org/fx"

	"github.com/labstack/echo/v4"

	authtransport "github.com/Additional-Code/storefront/internal/transport/http/auth"
)

// Module wires HTTP customer handlers.
var Module = fx.Options(
	fx.Provide(NewHandler),
	fx.Invoke(func(e *echo.Echo, h *Handler, auth *authtransport.Handler) {
		Register(e, h, auth)
	}),
)
