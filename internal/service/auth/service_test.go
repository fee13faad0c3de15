package auth

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	authpkg "github.com/Additional-Code/storefront/internal/auth"
	"github.com/Additional-Code/storefront/internal/cache"
	"github.com/Additional-Code/storefront/internal/dto"
	"github.com/Additional-Code/storefront/internal/entity"
	repo "github.com/Additional-Code/storefront/internal/repository/customer"
	"github.com/Additional-Code/storefront/internal/search"
	"github.com/Additional-Code/storefront/pkg/errorbank"
)

type fakeRepo struct {
	byEmail   map[string]*entity.Customer
	inserted  []*entity.Customer
	insertErr error
	rows      int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: make(map[string]*entity.Customer), rows: 1}
}

func (f *fakeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	c, ok := f.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) Insert(ctx context.Context, customer *entity.Customer) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	if f.rows > 0 {
		f.byEmail[customer.Email] = customer
		f.inserted = append(f.inserted, customer)
	}
	return f.rows, nil
}

type fakeCache struct {
	entries map[string][]byte
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := f.entries[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return v, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
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

func newTestService(r *fakeRepo, c *fakeCache, idx *fakeIndex) *Service {
	return &Service{
		repo:      r,
		cache:     c,
		cacheTTL:  time.Hour,
		index:     idx,
		indexName: "customers",
		logger:    zap.NewNop(),
	}
}

func registration() dto.RegisterCustomerRequest {
	return dto.RegisterCustomerRequest{
		CustomerName:    "Grace Hopper",
		Contact:         "0123456789",
		Email:           "grace@example.com",
		Password:        "s3cret-pass",
		ConfirmPassword: "s3cret-pass",
	}
}

func TestRegister_Success(t *testing.T) {
	r := newFakeRepo()
	c := newFakeCache()
	idx := newFakeIndex()
	svc := newTestService(r, c, idx)

	got, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)
	assert.NotEmpty(t, got.CustomerID)
	assert.Len(t, got.CustomerID, 32)
	assert.Equal(t, "grace@example.com", got.Email)

	require.Len(t, r.inserted, 1)
	stored := r.inserted[0]
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordSalt)
	assert.True(t, authpkg.VerifyPassword("s3cret-pass", stored.PasswordHash, stored.PasswordSalt))
}

func TestRegister_WritesProjectionAndIndexDocument(t *testing.T) {
	r := newFakeRepo()
	c := newFakeCache()
	idx := newFakeIndex()
	svc := newTestService(r, c, idx)

	got, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	cached, ok := c.entries[cache.CustomerKey(got.CustomerID)]
	require.True(t, ok)

	var projection dto.CachedCustomer
	require.NoError(t, json.Unmarshal(cached, &projection))
	assert.Equal(t, got.CustomerID, projection.CustomerID)
	assert.NotContains(t, string(cached), "password")

	_, ok = idx.docs["customers/"+got.CustomerID]
	assert.True(t, ok)
}

func TestRegister_AlreadyRegistered(t *testing.T) {
	r := newFakeRepo()
	r.byEmail["grace@example.com"] = &entity.Customer{ID: "c1", Email: "grace@example.com"}
	svc := newTestService(r, newFakeCache(), newFakeIndex())

	_, err := svc.Register(context.Background(), registration())
	require.Error(t, err)

	appErr := errorbank.From(err)
	assert.Equal(t, errorbank.KindConflict, appErr.Kind())
	assert.Equal(t, "Customer is already registered", appErr.Message())
}

func TestRegister_EmailMatchIsCaseSensitive(t *testing.T) {
	r := newFakeRepo()
	r.byEmail["grace@example.com"] = &entity.Customer{ID: "c1", Email: "grace@example.com"}
	svc := newTestService(r, newFakeCache(), newFakeIndex())

	req := registration()
	req.Email = "Grace@example.com"

	got, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Grace@example.com", got.Email)
}

func TestLogin_EmailMatchIsCaseSensitive(t *testing.T) {
	hash, salt, err := authpkg.HashPassword("s3cret-pass")
	require.NoError(t, err)

	r := newFakeRepo()
	r.byEmail["grace@example.com"] = &entity.Customer{
		ID:           "c1",
		Email:        "grace@example.com",
		PasswordHash: hash,
		PasswordSalt: salt,
	}
	svc := newTestService(r, newFakeCache(), newFakeIndex())

	_, err = svc.Login(context.Background(), dto.CustomerLoginRequest{Email: "Grace@example.com", Password: "s3cret-pass"})
	require.Error(t, err)

	appErr := errorbank.From(err)
	assert.Equal(t, errorbank.KindBadRequest, appErr.Kind())
	assert.Equal(t, "Email is incorrect", appErr.Message())
}

func TestRegister_SucceedsDespiteFanOutFailures(t *testing.T) {
	c := newFakeCache()
	c.setErr = errors.New("redis down")
	idx := newFakeIndex()
	idx.addErr = errors.New("elastic down")
	svc := newTestService(newFakeRepo(), c, idx)

	_, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)
}

func TestRegister_NoRowsAffected(t *testing.T) {
	r := newFakeRepo()
	r.rows = 0
	svc := newTestService(r, newFakeCache(), newFakeIndex())

	_, err := svc.Register(context.Background(), registration())
	require.Error(t, err)
	assert.Equal(t, errorbank.KindFailedDependency, errorbank.From(err).Kind())
}

func TestLogin_Success(t *testing.T) {
	hash, salt, err := authpkg.HashPassword("s3cret-pass")
	require.NoError(t, err)

	r := newFakeRepo()
	r.byEmail["grace@example.com"] = &entity.Customer{
		ID:           "c1",
		CustomerName: "Grace Hopper",
		Email:        "grace@example.com",
		PasswordHash: hash,
		PasswordSalt: salt,
	}
	svc := newTestService(r, newFakeCache(), newFakeIndex())

	got, err := svc.Login(context.Background(), dto.CustomerLoginRequest{Email: "grace@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "c1", got.CustomerID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(newFakeRepo(), newFakeCache(), newFakeIndex())

	_, err := svc.Login(context.Background(), dto.CustomerLoginRequest{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err)

	appErr := errorbank.From(err)
	assert.Equal(t, errorbank.KindBadRequest, appErr.Kind())
	assert.Equal(t, "Email is incorrect", appErr.Message())
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, salt, err := authpkg.HashPassword("s3cret-pass")
	require.NoError(t, err)

	r := newFakeRepo()
	r.byEmail["grace@example.com"] = &entity.Customer{
		ID:           "c1",
		Email:        "grace@example.com",
		PasswordHash: hash,
		PasswordSalt: salt,
	}
	svc := newTestService(r, newFakeCache(), newFakeIndex())

	_, err = svc.Login(context.Background(), dto.CustomerLoginRequest{Email: "grace@example.com", Password: "wrong"})
	require.Error(t, err)

	appErr := errorbank.From(err)
	assert.Equal(t, errorbank.KindBadRequest, appErr.Kind())
	assert.Equal(t, "Password is incorrect", appErr.Message())
}
