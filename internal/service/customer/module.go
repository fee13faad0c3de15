package customer

import (
	"go.uber.org/fx"

	repo "github.com/Additional-Code/storefront/internal/repository/customer"
)

// Module provides the customer service to Fx.
var Module = fx.Options(
	fx.Provide(NewService),
	fx.Provide(func(r *repo.Repository) Repository { return r }),
)
