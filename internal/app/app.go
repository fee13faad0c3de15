package app

import (
	"go.uber.org/fx"

	"github.com/Additional-Code/storefront/internal/cache"
	"github.com/Additional-Code/storefront/internal/config"
	"github.com/Additional-Code/storefront/internal/database"
	"github.com/Additional-Code/storefront/internal/logger"
	"github.com/Additional-Code/storefront/internal/messaging"
	"github.com/Additional-Code/storefront/internal/observability"
	repositorycustomer "github.com/Additional-Code/storefront/internal/repository/customer"
	repositoryorder "github.com/Additional-Code/storefront/internal/repository/order"
	repositoryproduct "github.com/Additional-Code/storefront/internal/repository/product"
	"github.com/Additional-Code/storefront/internal/search"
	httpserver "github.com/Additional-Code/storefront/internal/server/http"
	serviceauth "github.com/Additional-Code/storefront/internal/service/auth"
	servicecustomer "github.com/Additional-Code/storefront/internal/service/customer"
	serviceorder "github.com/Additional-Code/storefront/internal/service/order"
	serviceproduct "github.com/Additional-Code/storefront/internal/service/product"
	transporthttp "github.com/Additional-Code/storefront/internal/transport/http"
	"github.com/Additional-Code/storefront/internal/worker"
	workerorder "github.com/Additional-Code/storefront/internal/worker/order"
)

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	cache.Module,
	database.Module,
	logger.Module,
	messaging.Module,
	observability.Module,
	search.Module,
	repositorycustomer.Module,
	repositoryproduct.Module,
	repositoryorder.Module,
	serviceauth.Module,
	servicecustomer.Module,
	serviceproduct.Module,
	serviceorder.Module,
)

// HTTP wires the HTTP transport on top of the core modules.
var HTTP = fx.Options(
	Core,
	httpserver.Module,
	transporthttp.Module,
)

// Worker exposes background worker processing.
var Worker = fx.Options(
	Core,
	worker.Module,
	workerorder.Module,
)

// Module is the default application wiring (HTTP only).
var Module = HTTP
