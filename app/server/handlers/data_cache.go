package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"seed-inventory/app/server/constants"
	"seed-inventory/app/server/models"
)

func (a *App) getCachedRecord(ctx context.Context, id string) (*models.Record, bool) {
	if a.rdb == nil {
		return nil, false
	}

	cacheKey := fmt.Sprintf(constants.CacheKeyRecord, id)
	cacheBytes, err := a.rdb.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			a.l.Error("failed to query cache for record", zap.String("id", id), zap.Error(err))
		}
		return nil, false
	}

	var record models.Record
	if err = json.Unmarshal(cacheBytes, &record); err != nil {
		a.l.Error("failed to unmarshal record", zap.String("id", id), zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
		// 可能是无效的缓存，清理掉
		a.rdb.Del(ctx, cacheKey)
		return nil, false
	}

	return &record, true
}

func (a *App) setCachedRecord(ctx context.Context, record *models.Record) {
	if a.rdb == nil {
		return
	}

	cacheBytes, err := json.Marshal(record)
	if err != nil {
		a.l.Error("failed to marshal record", zap.String("id", record.ID), zap.Error(err))
		return
	}

	if err = a.rdb.Set(ctx, fmt.Sprintf(constants.CacheKeyRecord, record.ID), cacheBytes, constants.CacheExpireRecord).Err(); err != nil {
		a.l.Error("failed to cache record", zap.String("id", record.ID), zap.Error(err))
	}
}

func (a *App) dropCachedRecord(ctx context.Context, id string) {
	if a.rdb == nil {
		return
	}

	if err := a.rdb.Del(ctx, fmt.Sprintf(constants.CacheKeyRecord, id)).Err(); err != nil {
		a.l.Error("failed to drop cached record", zap.String("id", id), zap.Error(err))
	}
}
