package customer

import (
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/presentation/http/response"
	service "github.com/Additional-Code/storefront/internal/service/customer"
	authtransport "github.com/Additional-Code/storefront/internal/transport/http/auth"
	"github.com/Additional-Code/storefront/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/Additional-Code/storefront/transport/http/customer")

// Handler exposes customer endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a customer Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance. Registration and login
// live under /customers as well as /auth; both hit the same handlers.
func Register(e *echo.Echo, h *Handler, auth *authtransport.Handler) {
	g := e.Group("/customers")
	g.POST("", auth.RegisterCustomer)
	g.POST("/login", auth.Login)
	g.GET("", h.list)
	g.GET("/:id", h.getByID)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	var filter dto.CustomerFilter
	if err := c.Bind(&filter); err != nil {
		return b.WithError(errorbank.BadRequest("invalid query", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.list")
	defer span.End()

	page, err := h.svc.List(ctx, filter)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithMessage("Retrieved successfully").WithData(page).Build()
}

func (h *Handler) getByID(c echo.Context) error {
	b := response.New(c)

	id := c.Param("id")

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.getByID", trace.WithAttributes(attribute.String("customer.id", id)))
	defer span.End()

	customer, err := h.svc.Get(ctx, id)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithMessage("Retrieved successfully").WithData(customer).Build()
}

func (h *Handler) update(c echo.Context) error {
	b := response.New(c)

	id := c.Param("id")

	var payload dto.CustomerUpdate
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}
	if payload.CustomerName == "" || payload.Contact == "" || payload.Email == "" {
		return b.WithError(errorbank.BadRequest("customerName, contact and email are required")).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.update", trace.WithAttributes(attribute.String("customer.id", id)))
	defer span.End()

	customer, err := h.svc.Update(ctx, id, payload)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithMessage("Updated successfully").WithData(customer).Build()
}

func (h *Handler) delete(c echo.Context) error {
	b := response.New(c)

	id := c.Param("id")

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.delete", trace.WithAttributes(attribute.String("customer.id", id)))
	defer span.End()

	if err := h.svc.Delete(ctx, id); err != nil {
		return b.WithError(err).Build()
	}

	return b.Deleted()
}
