package product

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/presentation/http/response"
	service "github.com/Additional-Code/storefront/internal/service/product"
	"github.com/Additional-Code/storefront/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/Additional-Code/storefront/transport/http/product")

// Handler exposes product endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a product Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/products")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.getByID)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload dto.ProductRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}
	if payload.ProductName == "" || payload.Description == "" {
		return b.WithError(errorbank.BadRequest("productName and description are required")).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "products.create")
	span.SetAttributes(
		attribute.String("product.name", payload.ProductName),
	)
	defer span.End()

	product, err := h.svc.Create(ctx, payload)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithMessage("Created successfully").WithData(product).Build()
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	var filter dto.ProductFilter
	if err := c.Bind(&filter); err != nil {
		return b.WithError(errorbank.BadRequest("invalid query", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "products.list")
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

	ctx, span := httpTracer.Start(c.Request().Context(), "products.getByID", trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	product, err := h.svc.Get(ctx, id)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithMessage("Retrieved successfully").WithData(product).Build()
}

func (h *Handler) update(c echo.Context) error {
	b := response.New(c)

	id := c.Param("id")

	var payload dto.ProductUpdate
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}
	if payload.ProductName == "" || payload.Description == "" {
		return b.WithError(errorbank.BadRequest("productName and description are required")).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "products.update", trace.WithAttributes(attribute.String("product.id", id)))
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

	ctx, span := httpTracer.Start(c.Request().Context(), "products.delete", trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	if err := h.svc.Delete(ctx, id); err != nil {
		return b.WithError(err).Build()
	}

	return b.Deleted()
}
