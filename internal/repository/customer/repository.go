package customer

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Additional-Code/storefront/internal/database"
	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/entity"
)

var repoTracer = otel.Tracer("github.com/Additional-Code/storefront/repository/customer")

// ErrNotFound is returned when a customer is missing.
var ErrNotFound = errors.New("customer not found")

// Repository encapsulates read/write access for customers.
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

// ExistsByEmail reports whether a customer with the email is registered.
// The match is exact; only the list filter compares case-insensitively.
func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.ExistsByEmail")
	defer span.End()

	exists, err := r.reader.NewSelect().
		Model((*entity.Customer)(nil)).
		Where("email = ?", email).
		Exists(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "exists failed")
	}
	return exists, err
}

// GetByID fetches a customer by primary key.
func (r *Repository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.GetByID", trace.WithAttributes(attribute.String("customer.id", id)))
	defer span.End()

	customer := new(entity.Customer)
	err := r.reader.NewSelect().Model(customer).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return customer, nil
}

// GetByEmail fetches a customer by email for the login path.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.GetByEmail")
	defer span.End()

	customer := new(entity.Customer)
	err := r.reader.NewSelect().Model(customer).Where("email = ?", email).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return customer, nil
}

// Insert persists a new customer and reports the number of rows written.
func (r *Repository) Insert(ctx context.Context, customer *entity.Customer) (int64, error) {
	if customer == nil {
		return 0, errors.New("nil customer")
	}
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.Insert", trace.WithAttributes(attribute.String("customer.id", customer.ID)))
	defer span.End()

	res, err := r.writer.NewInsert().Model(customer).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return 0, err
	}
	return res.RowsAffected()
}

// Update overwrites the customer row and reports the number of rows written.
func (r *Repository) Update(ctx context.Context, customer *entity.Customer) (int64, error) {
	if customer == nil {
		return 0, errors.New("nil customer")
	}
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.Update", trace.WithAttributes(attribute.String("customer.id", customer.ID)))
	defer span.End()

	res, err := r.writer.NewUpdate().Model(customer).WherePK().Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the customer row and reports the number of rows removed.
func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.Delete", trace.WithAttributes(attribute.String("customer.id", id)))
	defer span.End()

	res, err := r.writer.NewDelete().Model((*entity.Customer)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return 0, err
	}
	return res.RowsAffected()
}

// List returns the filter's page of customers and the total matching count.
// Predicates apply conjunctively; email compares case-insensitively.
func (r *Repository) List(ctx context.Context, filter dto.CustomerFilter) ([]entity.Customer, int, error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.List")
	defer span.End()

	var customers []entity.Customer
	q := r.reader.NewSelect().Model(&customers)

	if filter.CustomerID != "" {
		q = q.Where("id = ?", filter.CustomerID)
	}
	if filter.CustomerName != "" {
		q = q.Where("customer_name = ?", filter.CustomerName)
	}
	if filter.Contact != "" {
		q = q.Where("contact = ?", filter.Contact)
	}
	if filter.Email != "" {
		q = q.Where("LOWER(email) = ?", strings.ToLower(filter.Email))
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
	return customers, total, nil
}
