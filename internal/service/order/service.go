package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
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
	"github.com/Additional-Code/storefront/internal/messaging"
	repo "github.com/Additional-Code/storefront/internal/repository/order"
	"github.com/Additional-Code/storefront/internal/search"
	"github.com/Additional-Code/storefront/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/Additional-Code/storefront/service/order")

// Tracking status labels resolved on read from the shipment flags.
const (
	trackingShipped    = "Your order has been shipped"
	trackingDelivered  = "Your order has been delivered"
	trackingProcessing = "Your order is being processing"
)

// Repository is the primary-store surface the order service needs.
type Repository interface {
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Insert(ctx context.Context, order *entity.Order) (int64, error)
	Update(ctx context.Context, order *entity.Order) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	ListAll(ctx context.Context) ([]entity.Order, error)
}

// Service encapsulates order business logic.
type Service struct {
	repo           Repository
	index          search.Index
	indexName      string
	logger         *zap.Logger
	publisher      messaging.Client
	publishEnabled bool
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository Repository
	Index      search.Index
	Config     config.Config
	Logger     *zap.Logger
	Publisher  messaging.Client
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		repo:           p.Repository,
		index:          p.Index,
		indexName:      p.Config.Search.OrderIndex,
		logger:         p.Logger,
		publisher:      p.Publisher,
		publishEnabled: p.Config.Messaging.Enabled,
	}
}

// Place records a new order. The order number must be unique; the total is
// derived from quantity and unit price and the initial tracking status is
// "Processing". The index write and the placed event are best-effort.
func (s *Service) Place(ctx context.Context, req dto.OrderRequest) (dto.OrderResponse, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Place", trace.WithAttributes(attribute.String("order.number", req.OrderNumber)))
	defer span.End()

	exists, err := s.repo.ExistsByNumber(ctx, req.OrderNumber)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("order uniqueness check failed", zap.String("number", req.OrderNumber), zap.Error(err))
		return dto.OrderResponse{}, errorbank.Internal("failed to place order", errorbank.WithCause(err))
	}
	if exists {
		return dto.OrderResponse{}, errorbank.Conflict("Order is already placed")
	}

	order := mapper.NewOrder(req)

	rows, err := s.repo.Insert(ctx, order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("placing order failed", zap.Any("payload", req), zap.Error(err))
		return dto.OrderResponse{}, errorbank.Internal("failed to place order", errorbank.WithCause(err))
	}
	if rows < 1 {
		return dto.OrderResponse{}, errorbank.FailedDependency("order insert affected no rows")
	}

	if err := s.index.Add(ctx, s.indexName, order.ID, order); err != nil {
		s.logger.Warn("order index add failed", zap.String("id", order.ID), zap.Error(err))
	}
	s.publishOrderPlaced(ctx, order)

	return mapper.OrderToResponse(order), nil
}

// ListAll returns every order. The order surface has no filter or pagination.
func (s *Service) ListAll(ctx context.Context) ([]dto.OrderResponse, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.ListAll")
	defer span.End()

	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("listing orders failed", zap.Error(err))
		return nil, errorbank.Internal("failed to list orders", errorbank.WithCause(err))
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, mapper.OrderToResponse(&orders[i]))
	}
	return items, nil
}

// Get retrieves an order by id, resolving the tracking status from the
// shipment flags. IsShipped wins over IsDelivered when both are set. The
// index read is exercised but its result is discarded.
func (s *Service) Get(ctx context.Context, id string) (dto.OrderResponse, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Get", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dto.OrderResponse{}, errorbank.NotFound("Order not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("loading order failed", zap.String("id", id), zap.Error(err))
		return dto.OrderResponse{}, errorbank.Internal("failed to load order", errorbank.WithCause(err))
	}

	order.TrackingStatus = resolveTracking(order)

	if _, err := s.index.GetByID(ctx, s.indexName, id); err != nil && !errors.Is(err, search.ErrDocMissing) {
		s.logger.Warn("order index read failed", zap.String("id", id), zap.Error(err))
	}

	return mapper.OrderToResponse(order), nil
}

// Update merges the patchable fields onto the stored row, recomputes the
// total, and refreshes the index document best-effort.
func (s *Service) Update(ctx context.Context, id string, update dto.OrderUpdate) (dto.OrderResponse, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Update", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dto.OrderResponse{}, errorbank.NotFound("Order not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("loading order for update failed", zap.String("id", id), zap.Error(err))
		return dto.OrderResponse{}, errorbank.Internal("failed to load order", errorbank.WithCause(err))
	}

	mapper.MergeOrder(order, update)

	rows, err := s.repo.Update(ctx, order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("updating order failed", zap.String("id", id), zap.Any("payload", update), zap.Error(err))
		return dto.OrderResponse{}, errorbank.Internal("failed to update order", errorbank.WithCause(err))
	}
	if rows < 1 {
		return dto.OrderResponse{}, errorbank.FailedDependency("order update affected no rows")
	}

	if err := s.index.Update(ctx, s.indexName, order.ID, order); err != nil {
		s.logger.Warn("order index update failed", zap.String("id", order.ID), zap.Error(err))
	}

	return mapper.OrderToResponse(order), nil
}

// Delete removes the order row, then drops the index document best-effort.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Delete", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("Order not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("loading order for delete failed", zap.String("id", id), zap.Error(err))
		return errorbank.Internal("failed to load order", errorbank.WithCause(err))
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		s.logger.Error("deleting order failed", zap.String("id", id), zap.Error(err))
		return errorbank.Internal("failed to delete order", errorbank.WithCause(err))
	}
	if rows < 1 {
		return errorbank.FailedDependency("order delete affected no rows")
	}

	if err := s.index.Delete(ctx, s.indexName, id); err != nil {
		s.logger.Warn("order index delete failed", zap.String("id", id), zap.Error(err))
	}
	return nil
}

// resolveTracking derives the human-readable tracking status from the
// shipment flags. IsShipped is checked before IsDelivered.
func resolveTracking(order *entity.Order) string {
	switch {
	case order.IsShipped:
		return trackingShipped
	case order.IsDelivered:
		return trackingDelivered
	default:
		return trackingProcessing
	}
}

func (s *Service) publishOrderPlaced(ctx context.Context, order *entity.Order) {
	if !s.publishEnabled || s.publisher == nil {
		return
	}
	event := OrderPlacedEvent{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		Quantity:    order.Quantity,
		TotalPrice:  order.TotalPrice,
		CreatedAt:   order.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal order placed", zap.Error(err))
		return
	}
	if err := s.publisher.Publish(ctx, []byte(fmt.Sprintf("order-%s", order.ID)), payload); err != nil {
		s.logger.Error("publish order placed", zap.Error(err))
	}
}

// OrderPlacedEvent is emitted when a new order is persisted.
type OrderPlacedEvent struct {
	ID          string          `json:"orderId"`
	OrderNumber string          `json:"orderNumber"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	CreatedAt   time.Time       `json:"createdAt"`
}
