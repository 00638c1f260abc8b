package handlers

import (
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"seed-inventory/app/importer/config"
	serverinits "seed-inventory/app/server/inits"
	"testing"
)

const csvHeader = "_id,Seed_RepDate,Seed_Year,Seeds_YearWeek,Seed_Varity,Seed_RDCSD,Seed_Stock2Sale,Seed_Season,Seed_Crop_Year\n"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存数据库只保留一个连接，并发写入在连接池中排队
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, serverinits.Migrate(db))
	return db
}

func newTestApp(t *testing.T, cfg *config.Config) (*App, *gorm.DB, *observer.ObservedLogs) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{Concurrency: 4}
	}
	core, logs := observer.New(zapcore.DebugLevel)
	db := newTestDB(t)

	return NewApp(cfg, zap.New(core), db), db, logs
}
