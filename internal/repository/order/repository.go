package order

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
	"github.com/Additional-Code/storefront/internal/entity"
)

var repoTracer = otel.Tracer("github.com/Additional-Code/storefront/repository/order")

// ErrNotFound is returned when an order is missing.
var ErrNotFound = errors.New("order not found")

// Repository encapsulates read/write access for orders.
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

// ExistsByNumber reports whether an order with the number is already placed.
func (r *Repository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.ExistsByNumber", trace.WithAttributes(attribute.String("order.number", number)))
	defer span.End()

	exists, err := r.reader.NewSelect().
		Model((*entity.Order)(nil)).
		Where("order_number = ?", number).
		Exists(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "exists failed")
	}
	return exists, err
}

// GetByID fetches an order by primary key.
func (r *Repository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.GetByID", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	order := new(entity.Order)
	err := r.reader.NewSelect().Model(order).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return order, nil
}

// Insert persists a new order and reports the number of rows written.
func (r *Repository) Insert(ctx context.Context, order *entity.Order) (int64, error) {
	if order == nil {
		return 0, errors.New("nil order")
	}
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Insert", trace.WithAttributes(attribute.String("order.number", order.OrderNumber)))
	defer span.End()

	res, err := r.writer.NewInsert().Model(order).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return 0, err
	}
	return res.RowsAffected()
}

// Update overwrites the order row and reports the number of rows written.
func (r *Repository) Update(ctx context.Context, order *entity.Order) (int64, error) {
	if order == nil {
		return 0, errors.New("nil order")
	}
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Update", trace.WithAttributes(attribute.String("order.id", order.ID)))
	defer span.End()

	res, err := r.writer.NewUpdate().Model(order).WherePK().Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the order row and reports the number of rows removed.
func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Delete", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	res, err := r.writer.NewDelete().Model((*entity.Order)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return 0, err
	}
	return res.RowsAffected()
}

// ListAll returns every order. The order surface has no filter or pagination.
func (r *Repository) ListAll(ctx context.Context) ([]entity.Order, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.ListAll")
	defer span.End()

	var orders []entity.Order
	if err := r.reader.NewSelect().Model(&orders).Scan(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		return nil, err
	}
	return orders, nil
}
