package order

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/entity"
	"github.com/Additional-Code/storefront/internal/messaging"
	repo "github.com/Additional-Code/storefront/internal/repository/order"
	"github.com/Additional-Code/storefront/internal/search"
	"github.com/Additional-Code/storefront/pkg/errorbank"
)

type fakeRepo struct {
	orders map[string]*entity.Order
	rows   int64
}

func newFakeRepo(orders ...*entity.Order) *fakeRepo {
	m := make(map[string]*entity.Order)
	for _, o := range orders {
		m[o.ID] = o
	}
	return &fakeRepo{orders: m, rows: 1}
}

func (f *fakeRepo) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	for _, o := range f.orders {
		if o.OrderNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	clone := *o
	return &clone, nil
}

func (f *fakeRepo) Insert(ctx context.Context, order *entity.Order) (int64, error) {
	if f.rows > 0 {
		f.orders[order.ID] = order
	}
	return f.rows, nil
}

func (f *fakeRepo) Update(ctx context.Context, order *entity.Order) (int64, error) {
	if f.rows > 0 {
		f.orders[order.ID] = order
	}
	return f.rows, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) (int64, error) {
	if f.rows > 0 {
		delete(f.orders, id)
	}
	return f.rows, nil
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]entity.Order, error) {
	out := make([]entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

type fakeIndex struct {
	docs   map[string][]byte
	addErr error
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{docs: make(map[string][]byte)}
}

func (f *fakeIndex) Add(ctx context.Context, index, id string, doc any) error {
	if f.addErr != nil {
		return f.addErr
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	f.docs[index+"/"+id] = payload
	return nil
}

func (f *fakeIndex) GetByID(ctx context.Context, index, id string) (json.RawMessage, error) {
	v, ok := f.docs[index+"/"+id]
	if !ok {
		return nil, search.ErrDocMissing
	}
	return v, nil
}

func (f *fakeIndex) Update(ctx context.Context, index, id string, doc any) error {
	return f.Add(ctx, index, id, doc)
}

func (f *fakeIndex) Delete(ctx context.Context, index, id string) error {
	delete(f.docs, index+"/"+id)
	return nil
}

type fakePublisher struct {
	published  [][]byte
	publishErr error
}

func (f *fakePublisher) Publish(ctx context.Context, key, value []byte) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, value)
	return nil
}

func (f *fakePublisher) Consume(ctx context.Context, handler messaging.Handler) error {
	return nil
}

func (f *fakePublisher) Topic() string { return "orders.placed" }

func newTestService(r *fakeRepo, idx *fakeIndex, pub *fakePublisher) *Service {
	return &Service{
		repo:           r,
		index:          idx,
		indexName:      "orders",
		logger:         zap.NewNop(),
		publisher:      pub,
		publishEnabled: pub != nil,
	}
}

func sampleOrder(id string) *entity.Order {
	return &entity.Order{
		ID:              id,
		OrderNumber:     "ORDER-1000",
		CustomerName:    "Grace Hopper",
		ShippingAddress: "1 Navy Way",
		Quantity:        3,
		UnitPrice:       decimal.NewFromFloat(10.50),
		TotalPrice:      decimal.NewFromFloat(31.50),
		CreatedAt:       time.Now().UTC(),
		TrackingStatus:  "Processing",
	}
}

func placement() dto.OrderRequest {
	return dto.OrderRequest{
		OrderNumber:     "ORDER-1000",
		CustomerName:    "Grace Hopper",
		Quantity:        3,
		UnitPrice:       decimal.NewFromFloat(10.50),
		ShippingAddress: "1 Navy Way",
	}
}

func TestPlace_Success(t *testing.T) {
	r := newFakeRepo()
	idx := newFakeIndex()
	pub := &fakePublisher{}
	svc := newTestService(r, idx, pub)

	got, err := svc.Place(context.Background(), placement())
	require.NoError(t, err)
	assert.Len(t, got.OrderID, 32)
	assert.True(t, got.TotalPrice.Equal(decimal.NewFromFloat(31.50)))
	assert.Equal(t, "Processing", got.TrackingStatus)

	_, indexed := idx.docs["orders/"+got.OrderID]
	assert.True(t, indexed)
}

func TestPlace_PublishesPlacedEvent(t *testing.T) {
	pub := &fakePublisher{}
	svc := newTestService(newFakeRepo(), newFakeIndex(), pub)

	got, err := svc.Place(context.Background(), placement())
	require.NoError(t, err)
	require.Len(t, pub.published, 1)

	var event OrderPlacedEvent
	require.NoError(t, json.Unmarshal(pub.published[0], &event))
	assert.Equal(t, got.OrderID, event.ID)
	assert.Equal(t, "ORDER-1000", event.OrderNumber)
	assert.Equal(t, 3, event.Quantity)
	assert.True(t, event.TotalPrice.Equal(decimal.NewFromFloat(31.50)))
}

func TestPlace_NoPublishWhenMessagingDisabled(t *testing.T) {
	pub := &fakePublisher{}
	svc := newTestService(newFakeRepo(), newFakeIndex(), pub)
	svc.publishEnabled = false

	_, err := svc.Place(context.Background(), placement())
	require.NoError(t, err)
	assert.Empty(t, pub.published)
}

func TestPlace_DuplicateNumber(t *testing.T) {
	svc := newTestService(newFakeRepo(sampleOrder("o1")), newFakeIndex(), &fakePublisher{})

	_, err := svc.Place(context.Background(), placement())
	require.Error(t, err)

	appErr := errorbank.From(err)
	assert.Equal(t, errorbank.KindConflict, appErr.Kind())
	assert.Equal(t, "Order is already placed", appErr.Message())
}

func TestPlace_SucceedsDespiteFanOutFailures(t *testing.T) {
	idx := newFakeIndex()
	idx.addErr = errors.New("elastic down")
	pub := &fakePublisher{publishErr: errors.New("kafka down")}
	svc := newTestService(newFakeRepo(), idx, pub)

	_, err := svc.Place(context.Background(), placement())
	require.NoError(t, err)
}

func TestGet_TrackingShippedWinsOverDelivered(t *testing.T) {
	o := sampleOrder("o1")
	o.IsShipped = true
	o.IsDelivered = true
	svc := newTestService(newFakeRepo(o), newFakeIndex(), &fakePublisher{})

	got, err := svc.Get(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "Your order has been shipped", got.TrackingStatus)
}

func TestGet_TrackingDelivered(t *testing.T) {
	o := sampleOrder("o1")
	o.IsDelivered = true
	svc := newTestService(newFakeRepo(o), newFakeIndex(), &fakePublisher{})

	got, err := svc.Get(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "Your order has been delivered", got.TrackingStatus)
}

func TestGet_TrackingProcessing(t *testing.T) {
	svc := newTestService(newFakeRepo(sampleOrder("o1")), newFakeIndex(), &fakePublisher{})

	got, err := svc.Get(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "Your order is being processing", got.TrackingStatus)
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeIndex(), &fakePublisher{})

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)

	appErr := errorbank.From(err)
	assert.Equal(t, errorbank.KindNotFound, appErr.Kind())
	assert.Equal(t, "Order not found", appErr.Message())
}

func TestUpdate_RecomputesTotal(t *testing.T) {
	svc := newTestService(newFakeRepo(sampleOrder("o1")), newFakeIndex(), &fakePublisher{})

	got, err := svc.Update(context.Background(), "o1", dto.OrderUpdate{
		CustomerName:    "Grace Hopper",
		ShippingAddress: "2 Navy Way",
		Quantity:        5,
		UnitPrice:       decimal.NewFromFloat(9.99),
	})
	require.NoError(t, err)
	assert.True(t, got.TotalPrice.Equal(decimal.NewFromFloat(49.95)))
	assert.Equal(t, "2 Navy Way", got.ShippingAddress)
}

func TestDelete_NoRowsAffected(t *testing.T) {
	r := newFakeRepo(sampleOrder("o1"))
	r.rows = 0
	svc := newTestService(r, newFakeIndex(), &fakePublisher{})

	err := svc.Delete(context.Background(), "o1")
	require.Error(t, err)
	assert.Equal(t, errorbank.KindFailedDependency, errorbank.From(err).Kind())
}

func TestListAll_ReturnsEverything(t *testing.T) {
	o2 := sampleOrder("o2")
	o2.OrderNumber = "ORDER-1001"
	svc := newTestService(newFakeRepo(sampleOrder("o1"), o2), newFakeIndex(), &fakePublisher{})

	got, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
