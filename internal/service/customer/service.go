package customer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/storefront/internal/cache"
	"github.com/Additional-Code/storefront/internal/config"
	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/entity"
	"github.com/Additional-Code/storefront/internal/mapper"
	repo "github.com/Additional-Code/storefront/internal/repository/customer"
	"github.com/Additional-Code/storefront/internal/search"
	"github.com/Additional-Code/storefront/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/Additional-Code/storefront/service/customer")

// Repository is the primary-store surface the customer service needs.
type Repository interface {
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	List(ctx context.Context, filter dto.CustomerFilter) ([]entity.Customer, int, error)
}

// Service encapsulates customer profile business logic. The cache and search
// index hold derived copies only; every interaction with them is best-effort.
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

// List returns a filtered, sorted, paginated page of customers.
func (s *Service) List(ctx context.Context, filter dto.CustomerFilter) (dto.Paginated[dto.CustomerResponse], error) {
	ctx, span := serviceTracer.Start(ctx, "CustomerService.List")
	defer span.End()

	filter.Normalize()

	customers, total, err := s.repo.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("listing customers failed", zap.Any("filter", filter), zap.Error(err))
		return dto.Paginated[dto.CustomerResponse]{}, errorbank.Internal("failed to list customers", errorbank.WithCause(err))
	}

	items := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		items = append(items, mapper.CustomerToResponse(&customers[i]))
	}
	return dto.NewPaginated(filter.Page, total, items), nil
}

// Get retrieves a customer by id. The cache and index reads are exercised but
// their results are discarded; the row from the primary store is what the
// caller sees.
func (s *Service) Get(ctx context.Context, id string) (dto.CustomerResponse, error) {
	ctx, span := serviceTracer.Start(ctx, "CustomerService.Get", trace.WithAttributes(attribute.String("customer.id", id)))
	defer span.End()

	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dto.CustomerResponse{}, errorbank.NotFound("Customer not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("loading customer failed", zap.String("id", id), zap.Error(err))
		return dto.CustomerResponse{}, errorbank.Internal("failed to load customer", errorbank.WithCause(err))
	}

	if _, err := s.cache.Get(ctx, cache.CustomerKey(id)); err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("customer cache read failed", zap.String("id", id), zap.Error(err))
	}
	if _, err := s.index.GetByID(ctx, s.indexName, id); err != nil && !errors.Is(err, search.ErrDocMissing) {
		s.logger.Warn("customer index read failed", zap.String("id", id), zap.Error(err))
	}

	return mapper.CustomerToResponse(customer), nil
}

// Update merges the patchable profile fields onto the stored row and
// refreshes the index document. The cache entry is deliberately left alone.
func (s *Service) Update(ctx context.Context, id string, update dto.CustomerUpdate) (dto.CustomerResponse, error) {
	ctx, span := serviceTracer.Start(ctx, "CustomerService.Update", trace.WithAttributes(attribute.String("customer.id", id)))
	defer span.End()

	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dto.CustomerResponse{}, errorbank.NotFound("Customer not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("loading customer for update failed", zap.String("id", id), zap.Error(err))
		return dto.CustomerResponse{}, errorbank.Internal("failed to load customer", errorbank.WithCause(err))
	}

	mapper.MergeCustomer(customer, update)

	rows, err := s.repo.Update(ctx, customer)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("updating customer failed", zap.String("id", id), zap.Any("payload", update), zap.Error(err))
		return dto.CustomerResponse{}, errorbank.Internal("failed to update customer", errorbank.WithCause(err))
	}
	if rows < 1 {
		return dto.CustomerResponse{}, errorbank.FailedDependency("customer update affected no rows")
	}

	if err := s.index.Update(ctx, s.indexName, customer.ID, customer); err != nil {
		s.logger.Warn("customer index update failed", zap.String("id", customer.ID), zap.Error(err))
	}

	return mapper.CustomerToResponse(customer), nil
}

// Delete removes the customer row. The cache entry and index document are
// dropped best-effort before the row delete is confirmed.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := serviceTracer.Start(ctx, "CustomerService.Delete", trace.WithAttributes(attribute.String("customer.id", id)))
	defer span.End()

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("Customer not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("loading customer for delete failed", zap.String("id", id), zap.Error(err))
		return errorbank.Internal("failed to load customer", errorbank.WithCause(err))
	}

	if err := s.cache.Delete(ctx, cache.CustomerKey(id)); err != nil {
		s.logger.Warn("customer cache delete failed", zap.String("id", id), zap.Error(err))
	}
	if err := s.index.Delete(ctx, s.indexName, id); err != nil {
		s.logger.Warn("customer index delete failed", zap.String("id", id), zap.Error(err))
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("deleting customer failed", zap.String("id", id), zap.Error(err))
		return errorbank.Internal("failed to delete customer", errorbank.WithCause(err))
	}
	if rows < 1 {
		return errorbank.FailedDependency("customer delete affected no rows")
	}
	return nil
}

// CacheProjection stores the credential-free customer projection, best-effort.
func CacheProjection(ctx context.Context, store cache.Store, ttl time.Duration, logger *zap.Logger, customer *entity.Customer) {
	projection := mapper.CustomerToCached(customer)
	payload, err := json.Marshal(projection)
	if err != nil {
		logger.Warn("customer projection marshal failed", zap.String("id", customer.ID), zap.Error(err))
		return
	}
	if err := store.Set(ctx, cache.CustomerKey(customer.ID), payload, ttl); err != nil {
		logger.Warn("customer cache write failed", zap.String("id", customer.ID), zap.Error(err))
	}
}
