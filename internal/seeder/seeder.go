package seeder

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Additional-Code/storefront/internal/database"
	"github.com/Additional-Code/storefront/internal/entity"
)

// Seeder performs database seeding for local/dev setups.
type Seeder struct {
	db     *bun.DB
	logger *zap.Logger
}

// New constructs a Seeder backed by the primary database connection.
func New(conns *database.Connections, logger *zap.Logger) *Seeder {
	return &Seeder{db: conns.Writer, logger: logger}
}

// Products seeds example products if they are missing.
func (s *Seeder) Products(ctx context.Context) error {
	now := time.Now().UTC()
	samples := []entity.Product{
		{
			ID:           entity.NewID(),
			ProductName:  "Wireless Mouse",
			Description:  "Ergonomic 2.4GHz wireless mouse",
			ProductPrice: decimal.NewFromFloat(24.99),
			ImageUrl:     "https://cdn.example.com/products/wireless-mouse.png",
			CreatedAt:    now,
		},
		{
			ID:           entity.NewID(),
			ProductName:  "Mechanical Keyboard",
			Description:  "Tenkeyless mechanical keyboard with brown switches",
			ProductPrice: decimal.NewFromFloat(89.90),
			ImageUrl:     "https://cdn.example.com/products/mechanical-keyboard.png",
			CreatedAt:    now,
		},
		{
			ID:           entity.NewID(),
			ProductName:  "USB-C Hub",
			Description:  "7-in-1 USB-C hub with HDMI and card reader",
			ProductPrice: decimal.NewFromFloat(39.50),
			ImageUrl:     "https://cdn.example.com/products/usb-c-hub.png",
			CreatedAt:    now,
		},
	}

	for _, sample := range samples {
		product := sample
		_, err := s.db.NewInsert().Model(&product).
			On("CONFLICT (product_name) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return err
		}
	}

	if s.logger != nil {
		s.logger.Info("seeded products", zap.Int("count", len(samples)))
	}
	return nil
}
