package auth

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/fx"
	"go.uber.org/zap"

	authpkg "github.com/Additional-Code/storefront/internal/auth"
	"github.com/Additional-Code/storefront/internal/cache"
	"github.com/Additional-Code/storefront/internal/config"
	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/entity"
	"github.com/Additional-Code/storefront/internal/mapper"
	repo "github.com/Additional-Code/storefront/internal/repository/customer"
	"github.com/Additional-Code/storefront/internal/search"
	customersvc "github.com/Additional-Code/storefront/internal/service/customer"
	"github.com/Additional-Code/storefront/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/Additional-Code/storefront/service/auth")

// Repository is the primary-store surface the auth service needs.
type Repository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Insert(ctx context.Context, customer *entity.Customer) (int64, error)
}

// Service handles customer registration and login.
type Service struct {
	repo      Repository
	cache     cache.Store
	cacheTTL  time.Duration
	index     search.Index
	indexName string
	logger    *zap.Logger
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository Repository
	Cache      cache.Store
	Index      search.Index
	Config     config.Config
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		repo:      p.Repository,
		cache:     p.Cache,
		cacheTTL:  p.Config.Cache.CustomerTTL(),
		index:     p.Index,
		indexName: p.Config.Search.CustomerIndex,
		logger:    p.Logger,
	}
}

// Register creates a new customer. The email must not already be registered.
// After the row is persisted, the cache projection and index document are
// written best-effort; their failure never fails the registration.
func (s *Service) Register(ctx context.Context, req dto.RegisterCustomerRequest) (dto.CustomerResponse, error) {
	ctx, span := serviceTracer.Start(ctx, "AuthService.Register")
	defer span.End()

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("registration uniqueness check failed", zap.String("email", req.Email), zap.Error(err))
		return dto.CustomerResponse{}, errorbank.Internal("failed to register customer", errorbank.WithCause(err))
	}
	if exists {
		return dto.CustomerResponse{}, errorbank.Conflict("Customer is already registered")
	}

	hash, salt, err := authpkg.HashPassword(req.Password)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "hashing error")
		s.logger.Error("password hashing failed", zap.Error(err))
		return dto.CustomerResponse{}, errorbank.Internal("failed to register customer", errorbank.WithCause(err))
	}

	customer := mapper.NewCustomer(req)
	customer.PasswordHash = hash
	customer.PasswordSalt = salt

	rows, err := s.repo.Insert(ctx, customer)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("registering customer failed", zap.Any("payload", req), zap.Error(err))
		return dto.CustomerResponse{}, errorbank.Internal("failed to register customer", errorbank.WithCause(err))
	}
	if rows < 1 {
		return dto.CustomerResponse{}, errorbank.FailedDependency("customer insert affected no rows")
	}

	customersvc.CacheProjection(ctx, s.cache, s.cacheTTL, s.logger, customer)
	if err := s.index.Add(ctx, s.indexName, customer.ID, customer); err != nil {
		s.logger.Warn("customer index add failed", zap.String("id", customer.ID), zap.Error(err))
	}

	return mapper.CustomerToResponse(customer), nil
}

// Login verifies the email and password guard checks in sequence and returns
// the matching customer on success.
func (s *Service) Login(ctx context.Context, req dto.CustomerLoginRequest) (dto.CustomerResponse, error) {
	ctx, span := serviceTracer.Start(ctx, "AuthService.Login")
	defer span.End()

	customer, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dto.CustomerResponse{}, errorbank.BadRequest("Email is incorrect")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("login lookup failed", zap.String("email", req.Email), zap.Error(err))
		return dto.CustomerResponse{}, errorbank.Internal("failed to log in customer", errorbank.WithCause(err))
	}

	if !authpkg.VerifyPassword(req.Password, customer.PasswordHash, customer.PasswordSalt) {
		return dto.CustomerResponse{}, errorbank.BadRequest("Password is incorrect")
	}

	return mapper.CustomerToResponse(customer), nil
}
