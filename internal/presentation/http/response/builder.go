package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Additional-Code/storefront/pkg/errorbank"
)

// Envelope is the wire shape every endpoint responds with. Code mirrors the
// HTTP status verbatim; Data is always present, possibly empty.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Builder helps construct consistent HTTP responses.
type Builder struct {
	ctx     echo.Context
	status  int
	message string
	data    any
	err     error
}

// New instantiates a Builder for the provided request context.
func New(ctx echo.Context) *Builder {
	return &Builder{ctx: ctx, status: http.StatusOK}
}

// WithStatus overrides the response status code.
func (b *Builder) WithStatus(status int) *Builder {
	if status > 0 {
		b.status = status
	}
	return b
}

// WithMessage sets the human-readable message.
func (b *Builder) WithMessage(message string) *Builder {
	b.message = message
	return b
}

// WithData attaches a success payload.
func (b *Builder) WithData(data any) *Builder {
	b.data = data
	return b
}

// WithError records an error to be rendered.
func (b *Builder) WithError(err error) *Builder {
	b.err = err
	return b
}

// Deleted emits the deletion response. The envelope carries no payload.
func (b *Builder) Deleted() error {
	return b.WithStatus(http.StatusNoContent).WithMessage("Deleted successfully").Build()
}

// Build finalises and emits the HTTP response.
func (b *Builder) Build() error {
	if b.err != nil {
		return b.buildError()
	}
	return b.buildSuccess()
}

func (b *Builder) buildSuccess() error {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	if b.status == http.StatusNoContent {
		return b.ctx.NoContent(b.status)
	}
	data := b.data
	if data == nil {
		data = struct{}{}
	}
	return b.ctx.JSON(b.status, Envelope{
		Code:    b.status,
		Message: b.message,
		Data:    data,
	})
}

func (b *Builder) buildError() error {
	appErr := errorbank.From(b.err)
	status := appErr.StatusCode()
	return b.ctx.JSON(status, Envelope{
		Code:    status,
		Message: appErr.Message(),
		Data:    struct{}{},
	})
}
