package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/presentation/http/response"
	service "github.com/Additional-Code/storefront/internal/service/auth"
	"github.com/Additional-Code/storefront/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/Additional-Code/storefront/transport/http/auth")

// Handler exposes registration and login endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs an auth Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance. The /auth group is an
// alias for the registration and login endpoints under /customers.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/auth")
	g.POST("", h.RegisterCustomer)
	g.POST("/login", h.Login)
}

// RegisterCustomer handles new customer registration.
func (h *Handler) RegisterCustomer(c echo.Context) error {
	b := response.New(c)

	var payload dto.RegisterCustomerRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}
	if err := validateRegister(payload); err != nil {
		return b.WithError(err).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "auth.register")
	defer span.End()

	customer, err := h.svc.Register(ctx, payload)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithMessage("Created successfully").WithData(customer).Build()
}

// Login handles customer login.
func (h *Handler) Login(c echo.Context) error {
	b := response.New(c)

	var payload dto.CustomerLoginRequest
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}
	if payload.Email == "" || payload.Password == "" {
		return b.WithError(errorbank.BadRequest("email and password are required")).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "auth.login")
	defer span.End()

	customer, err := h.svc.Login(ctx, payload)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithMessage("Login successful").WithData(customer).Build()
}

func validateRegister(payload dto.RegisterCustomerRequest) error {
	if payload.CustomerName == "" || payload.Contact == "" || payload.Email == "" || payload.Password == "" {
		return errorbank.BadRequest("customerName, contact, email and password are required")
	}
	if payload.Password != payload.ConfirmPassword {
		return errorbank.BadRequest("passwords do not match")
	}
	return nil
}
