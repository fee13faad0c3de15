package product

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/storefront/internal/config"
	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/entity"
	"github.com/Additional-Code/storefront/internal/mapper"
	repo "github.com/Additional-Code/storefront/internal/repository/product"
	"github.com/Additional-Code/storefront/internal/search"
	"github.com/Additional-Code/storefront/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/Additional-Code/storefront/service/product")

// Repository is the primary-store surface the product service needs.
type Repository interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Insert(ctx context.Context, product *entity.Product) (int64, error)
	Update(ctx context.Context, product *entity.Product) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]entity.Product, int, error)
}

// Service encapsulates catalog business logic.
type Service struct {
	repo      Repository
	index     search.Index
	indexName string
	logger    *zap.Logger
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository Repository
	Index      search.Index
	Config     config.Config
	Logger     *zap.Logger
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		repo:      p.Repository,
		index:     p.Index,
		indexName: p.Config.Search.ProductIndex,
		logger:    p.Logger,
	}
}

// Create adds a product to the catalog. The name must be unique. The index
// document is written best-effort after the row is persisted.
func (s *Service) Create(ctx context.Context, req dto.ProductRequest) (dto.ProductResponse, error) {
	ctx, span := serviceTracer.Start(ctx, "ProductService.Create", trace.WithAttributes(attribute.String("product.name", req.ProductName)))
	defer span.End()

	exists, err := s.repo.ExistsByName(ctx, req.ProductName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("product uniqueness check failed", zap.String("name", req.ProductName), zap.Error(err))
		return dto.ProductResponse{}, errorbank.Internal("failed to create product", errorbank.WithCause(err))
	}
	if exists {
		return dto.ProductResponse{}, errorbank.Conflict("Product is already added")
	}

	product := mapper.NewProduct(req)

	rows, err := s.repo.Insert(ctx, product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("creating product failed", zap.Any("payload", req), zap.Error(err))
		return dto.ProductResponse{}, errorbank.Internal("failed to create product", errorbank.WithCause(err))
	}
	if rows < 1 {
		return dto.ProductResponse{}, errorbank.FailedDependency("product insert affected no rows")
	}

	if err := s.index.Add(ctx, s.indexName, product.ID, product); err != nil {
		s.logger.Warn("product index add failed", zap.String("id", product.ID), zap.Error(err))
	}

	return mapper.ProductToResponse(product), nil
}

// List returns a filtered, sorted, paginated page of products.
func (s *Service) List(ctx context.Context, filter dto.ProductFilter) (dto.Paginated[dto.ProductResponse], error) {
	ctx, span := serviceTracer.Start(ctx, "ProductService.List")
	defer span.End()

	filter.Normalize()

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("listing products failed", zap.Any("filter", filter), zap.Error(err))
		return dto.Paginated[dto.ProductResponse]{}, errorbank.Internal("failed to list products", errorbank.WithCause(err))
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, mapper.ProductToResponse(&products[i]))
	}
	return dto.NewPaginated(filter.Page, total, items), nil
}

// Get retrieves a product by id. The index read is exercised but its result
// is discarded.
func (s *Service) Get(ctx context.Context, id string) (dto.ProductResponse, error) {
	ctx, span := serviceTracer.Start(ctx, "ProductService.Get", trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dto.ProductResponse{}, errorbank.NotFound("Product not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("loading product failed", zap.String("id", id), zap.Error(err))
		return dto.ProductResponse{}, errorbank.Internal("failed to load product", errorbank.WithCause(err))
	}

	if _, err := s.index.GetByID(ctx, s.indexName, id); err != nil && !errors.Is(err, search.ErrDocMissing) {
		s.logger.Warn("product index read failed", zap.String("id", id), zap.Error(err))
	}

	return mapper.ProductToResponse(product), nil
}

// Update merges the patchable fields onto the stored row and refreshes the
// index document. The response carries the update-model shape.
func (s *Service) Update(ctx context.Context, id string, update dto.ProductUpdate) (dto.ProductUpdate, error) {
	ctx, span := serviceTracer.Start(ctx, "ProductService.Update", trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dto.ProductUpdate{}, errorbank.NotFound("Product not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("loading product for update failed", zap.String("id", id), zap.Error(err))
		return dto.ProductUpdate{}, errorbank.Internal("failed to load product", errorbank.WithCause(err))
	}

	mapper.MergeProduct(product, update)

	rows, err := s.repo.Update(ctx, product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("updating product failed", zap.String("id", id), zap.Any("payload", update), zap.Error(err))
		return dto.ProductUpdate{}, errorbank.Internal("failed to update product", errorbank.WithCause(err))
	}
	if rows < 1 {
		return dto.ProductUpdate{}, errorbank.FailedDependency("product update affected no rows")
	}

	if err := s.index.Update(ctx, s.indexName, product.ID, product); err != nil {
		s.logger.Warn("product index update failed", zap.String("id", product.ID), zap.Error(err))
	}

	return mapper.ProductToUpdateShape(product), nil
}

// Delete removes the product row, then drops the index document best-effort.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := serviceTracer.Start(ctx, "ProductService.Delete", trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("Product not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("loading product for delete failed", zap.String("id", id), zap.Error(err))
		return errorbank.Internal("failed to load product", errorbank.WithCause(err))
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("deleting product failed", zap.String("id", id), zap.Error(err))
		return errorbank.Internal("failed to delete product", errorbank.WithCause(err))
	}
	if rows < 1 {
		return errorbank.FailedDependency("product delete affected no rows")
	}

	if err := s.index.Delete(ctx, s.indexName, id); err != nil {
		s.logger.Warn("product index delete failed", zap.String("id", id), zap.Error(err))
	}
	return nil
}
