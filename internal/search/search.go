// Package search integrates the document index the entity services fan out
// to. Callers treat every operation as best-effort: the index holds derived,
// non-authoritative copies that may be stale or absent at any time.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/olivere/elastic/v7"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/storefront/internal/config"
)

// Index is the generic add/get/update/delete-by-id surface over the document
// store. One logical index per entity type; documents are anything that
// serializes by id.
type Index interface {
	Add(ctx context.Context, index, id string, doc any) error
	GetByID(ctx context.Context, index, id string) (json.RawMessage, error)
	Update(ctx context.Context, index, id string, doc any) error
	Delete(ctx context.Context, index, id string) error
}

// ErrDocMissing indicates the document is absent from the index.
var ErrDocMissing = errors.New("document missing")

// Module provides the search index to the Fx graph.
var Module = fx.Provide(NewIndex)

// NewIndex initialises the configured index backend (elastic or noop).
func NewIndex(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (Index, error) {
	switch cfg.Search.Driver {
	case "noop":
		if logger != nil {
			logger.Info("search disabled; using noop index")
		}
		return noopIndex{}, nil
	case "elastic":
		return newElasticIndex(lc, cfg.Search, logger)
	default:
		return nil, fmt.Errorf("unsupported search driver: %s", cfg.Search.Driver)
	}
}

type noopIndex struct{}

func (noopIndex) Add(context.Context, string, string, any) error { return nil }

func (noopIndex) GetByID(context.Context, string, string) (json.RawMessage, error) {
	return nil, ErrDocMissing
}

func (noopIndex) Update(context.Context, string, string, any) error { return nil }

func (noopIndex) Delete(context.Context, string, string) error { return nil }

type elasticIndex struct {
	client *elastic.Client
}

func newElasticIndex(lc fx.Lifecycle, cfg config.Search, logger *zap.Logger) (Index, error) {
	client, err := elastic.NewClient(
		elastic.SetURL(cfg.URL),
		elastic.SetSniff(false),
		elastic.SetHealthcheck(false),
	)
	if err != nil {
		return nil, fmt.Errorf("elastic client: %w", err)
	}

	idx := &elasticIndex{client: client}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, _, err := client.Ping(cfg.URL).Do(ctx); err != nil {
				return fmt.Errorf("ping elastic: %w", err)
			}
			if logger != nil {
				logger.Info("elastic index connected", zap.String("url", cfg.URL))
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if logger != nil {
				logger.Info("closing elastic index")
			}
			client.Stop()
			return nil
		},
	})

	return idx, nil
}

func (s *elasticIndex) Add(ctx context.Context, index, id string, doc any) error {
	if index == "" || id == "" {
		return errors.New("index and id are required")
	}
	_, err := s.client.Index().Index(index).Id(id).BodyJson(doc).Do(ctx)
	return err
}

func (s *elasticIndex) GetByID(ctx context.Context, index, id string) (json.RawMessage, error) {
	if index == "" || id == "" {
		return nil, ErrDocMissing
	}
	res, err := s.client.Get().Index(index).Id(id).Do(ctx)
	if elastic.IsNotFound(err) {
		return nil, ErrDocMissing
	}
	if err != nil {
		return nil, err
	}
	if res == nil || !res.Found {
		return nil, ErrDocMissing
	}
	return res.Source, nil
}

func (s *elasticIndex) Update(ctx context.Context, index, id string, doc any) error {
	if index == "" || id == "" {
		return errors.New("index and id are required")
	}
	_, err := s.client.Update().Index(index).Id(id).Doc(doc).Do(ctx)
	return err
}

func (s *elasticIndex) Delete(ctx context.Context, index, id string) error {
	if index == "" || id == "" {
		return nil
	}
	_, err := s.client.Delete().Index(index).Id(id).Do(ctx)
	if elastic.IsNotFound(err) {
		return nil
	}
	return err
}
