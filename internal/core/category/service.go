// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/coursedesk/internal/platform/constants"
	"github.com/taibuivan/coursedesk/internal/platform/redis"
)

// Service serves the category list through the cache.
type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewService constructs a category [Service]. A nil cache reads straight from the store.
func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger}
}

/*
ListCategories returns all categories ordered by name.

Description: The list is read from the cache first. Cache failures are
logged and fall back to the store so a Redis outage never blocks authoring.
*/
func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	if service.cache != nil {
		var cached []*Category
		err := service.cache.Get(context, constants.RedisKeyCategoryOptions, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			service.logger.Warn("category_cache_read_failed", slog.Any("error", err))
		}
	}

	categories, err := service.repo.ListAll(context)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		if err := service.cache.Set(context, constants.RedisKeyCategoryOptions, categories); err != nil {
			service.logger.Warn("category_cache_write_failed", slog.Any("error", err))
		}
	}

	return categories, nil
}
