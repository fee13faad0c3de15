package order

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/presentation/http/response"
	service "github.com/Additional-Code/storefront/internal/service/order"
	"github.com/Additional-Code/storefront/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/Additional-Code/storefront/transport/http/order")

// Handler exposes order endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs an order Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/orders")
	g.POST("", h.place)
	g.GET("", h.list)
	g.GET("/:id", h.getByID)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *Handler) place(c echo.Context) error {
	b := response.New(c)

	var payload dto.OrderRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}
	if payload.OrderNumber == "" || payload.CustomerName == "" || payload.ShippingAddress == "" {
		return b.WithError(errorbank.BadRequest("orderNumber, customerName and shippingAddress are required")).Build()
	}
	if payload.Quantity <= 0 {
		return b.WithError(errorbank.BadRequest("quantity must be positive")).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.place")
	span.SetAttributes(
		attribute.String("order.number", payload.OrderNumber),
	)
	defer span.End()

	order, err := h.svc.Place(ctx, payload)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithMessage("Created successfully").WithData(order).Build()
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.list")
	defer span.End()

	orders, err := h.svc.ListAll(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithMessage("Retrieved successfully").WithData(orders).Build()
}

func (h *Handler) getByID(c echo.Context) error {
	b := response.New(c)

	id := c.Param("id")

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.getByID", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	order, err := h.svc.Get(ctx, id)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithMessage("Retrieved successfully").WithData(order).Build()
}

func (h *Handler) update(c echo.Context) error {
	b := response.New(c)

	id := c.Param("id")

	var payload dto.OrderUpdate
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}
	if payload.CustomerName == "" || payload.ShippingAddress == "" {
		return b.WithError(errorbank.BadRequest("customerName and shippingAddress are required")).Build()
	}
	if payload.Quantity <= 0 {
		return b.WithError(errorbank.BadRequest("quantity must be positive")).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.update", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	updated, err := h.svc.Update(ctx, id, payload)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithMessage("Created successfully").WithData(updated).Build()
}

func (h *Handler) delete(c echo.Context) error {
	b := response.New(c)

	id := c.Param("id")

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.delete", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	if err := h.svc.Delete(ctx, id); err != nil {
		return b.WithError(err).Build()
	}

	return b.Deleted()
}
