package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Additional-Code/storefront/internal/database"
	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/entity"
)

var repoTracer = otel.Tracer("github.com/Additional-Code/storefront/repository/product")

// ErrNotFound is returned when a product is missing.
var ErrNotFound = errors.New("product not found")

// Repository encapsulates read/write access for products.
type Repository struct {
	writer *bun.DB
	reader *bun.DB
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{
		writer: conns.Writer,
		reader: conns.Reader,
	}
}

// ExistsByName reports whether a product with the name is already added.
func (r *Repository) ExistsByName(ctx context.Context, name string) (bool, error) {
	ctx, span := repoTracer.Start(ctx, "ProductRepository.ExistsByName", trace.WithAttributes(attribute.String("product.name", name)))
	defer span.End()

	exists, err := r.reader.NewSelect().
		Model((*entity.Product)(nil)).
		Where("product_name = ?", name).
		Exists(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "exists failed")
	}
	return exists, err
}

// GetByID fetches a product by primary key.
func (r *Repository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	ctx, span := repoTracer.Start(ctx, "ProductRepository.GetByID", trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	product := new(entity.Product)
	err := r.reader.NewSelect().Model(product).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return product, nil
}

// Insert persists a new product and reports the number of rows written.
func (r *Repository) Insert(ctx context.Context, product *entity.Product) (int64, error) {
	if product == nil {
		return 0, errors.New("nil product")
	}
	ctx, span := repoTracer.Start(ctx, "ProductRepository.Insert", trace.WithAttributes(attribute.String("product.id", product.ID)))
	defer span.End()

	res, err := r.writer.NewInsert().Model(product).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return 0, err
	}
	return res.RowsAffected()
}

// Update overwrites the product row and reports the number of rows written.
func (r *Repository) Update(ctx context.Context, product *entity.Product) (int64, error) {
	if product == nil {
		return 0, errors.New("nil product")
	}
	ctx, span := repoTracer.Start(ctx, "ProductRepository.Update", trace.WithAttributes(attribute.String("product.id", product.ID)))
	defer span.End()

	res, err := r.writer.NewUpdate().Model(product).WherePK().Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the product row and reports the number of rows removed.
func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	ctx, span := repoTracer.Start(ctx, "ProductRepository.Delete", trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	res, err := r.writer.NewDelete().Model((*entity.Product)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return 0, err
	}
	return res.RowsAffected()
}

// List returns the filter's page of products and the total matching count.
func (r *Repository) List(ctx context.Context, filter dto.ProductFilter) ([]entity.Product, int, error) {
	ctx, span := repoTracer.Start(ctx, "ProductRepository.List")
	defer span.End()

	var products []entity.Product
	q := r.reader.NewSelect().Model(&products)

	if filter.ProductID != "" {
		q = q.Where("id = ?", filter.ProductID)
	}
	if filter.ProductName != "" {
		q = q.Where("product_name = ?", filter.ProductName)
	}
	if filter.Description != "" {
		q = q.Where("description = ?", filter.Description)
	}

	q = q.Order(filter.SortClause())

	total, err := q.
		Limit(filter.PageSize).
		Offset((filter.CurrentPage - 1) * filter.PageSize).
		ScanAndCount(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		return nil, 0, err
	}
	return products, total, nil
}
