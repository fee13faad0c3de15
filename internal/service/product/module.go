package product

import (
	"go.uber.org/fx"

	repo "github.com/Additional-Code/storefront/internal/repository/product"
)

// Module provides the product service to Fx.
var Module = fx.Options(
	fx.Provide(NewService),
	fx.Provide(func(r *repo.Repository) Repository { return r }),
)
