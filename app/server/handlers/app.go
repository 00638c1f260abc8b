package handlers

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"seed-inventory/app/server/config"
	"seed-inventory/app/server/gen/oapi"
	"seed-inventory/app/server/jwt"
)

var _ oapi.ServerInterface = (*App)(nil)

type App struct {
	l   *zap.Logger   // 日志
	db  *gorm.DB      // 数据库
	rdb *redis.Client // Redis ，为 nil 时不使用记录缓存
	jwt *jwt.JWT      // JWT ，用于无状态验证

	isProd       bool // 生产环境下 cookie 带 Secure 标记
	legacyStatus bool // 更新与删除成功时使用 201
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT, cfg *config.Config) *App {
	return &App{
		l:            l,
		db:           db,
		rdb:          rdb,
		jwt:          j,
		isProd:       cfg.System.IsProd,
		legacyStatus: cfg.Compat.LegacyStatusCodes,
	}
}
