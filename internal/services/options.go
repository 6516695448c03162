package services

import (
	"context"
	"encoding/json"
	"time"

	"amc-backend/internal/cache"
	"amc-backend/internal/cascade"
)

const optionsCacheTTL = 10 * time.Minute

// cachedOptions serves a picker list from Redis when present, otherwise
// loads it and caches the result. A dead cache just means every call loads.
func cachedOptions(ctx context.Context, key string, load func(context.Context) ([]cascade.Option, error)) ([]cascade.Option, error) {
	if data, ok := cache.GetCached(ctx, key); ok {
		var opts []cascade.Option
		if err := json.Unmarshal(data, &opts); err == nil {
			return opts, nil
		}
	}

	opts, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(opts); err == nil {
		cache.SetCached(ctx, key, data, optionsCacheTTL)
	}
	return opts, nil
}

// Options returns the active customers as picker options.
func (s *CustomerService) Options(ctx context.Context) ([]cascade.Option, error) {
	return cachedOptions(ctx, cache.CustomerOptionsKey, func(ctx context.Context) ([]cascade.Option, error) {
		customers, err := s.Repo.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]cascade.Option, 0, len(customers))
		for _, c := range customers {
			opts = append(opts, cascade.Option{ID: c.ID, Label: c.Name})
		}
		return opts, nil
	})
}

// BrandOptions returns the active brands as picker options.
func (s *CatalogService) BrandOptions(ctx context.Context) ([]cascade.Option, error) {
	return cachedOptions(ctx, cache.BrandOptionsKey, func(ctx context.Context) ([]cascade.Option, error) {
		brands, err := s.Brands.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]cascade.Option, 0, len(brands))
		for _, b := range brands {
			opts = append(opts, cascade.Option{ID: b.ID, Label: b.Name})
		}
		return opts, nil
	})
}

// CategoryOptions returns the active categories as picker options.
func (s *CatalogService) CategoryOptions(ctx context.Context) ([]cascade.Option, error) {
	return cachedOptions(ctx, cache.CategoryOptionsKey, func(ctx context.Context) ([]cascade.Option, error) {
		categories, err := s.Categories.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]cascade.Option, 0, len(categories))
		for _, c := range categories {
			opts = append(opts, cascade.Option{ID: c.ID, Label: c.Name})
		}
		return opts, nil
	})
}

// ProductOptions returns the active products as picker options.
func (s *CatalogService) ProductOptions(ctx context.Context) ([]cascade.Option, error) {
	return cachedOptions(ctx, cache.ProductOptionsKey, func(ctx context.Context) ([]cascade.Option, error) {
		products, err := s.Products.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		opts := make([]cascade.Option, 0, len(products))
		for _, p := range products {
			opts = append(opts, cascade.Option{ID: p.ID, Label: p.Name})
		}
		return opts, nil
	})
}
