package handlers

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"seed-inventory/app/importer/config"
)

type App struct {
	cfg *config.Config
	l   *zap.Logger
	db  *gorm.DB

	s3 objectGetter // 首次读取 s3:// 来源时创建
}

func NewApp(cfg *config.Config, l *zap.Logger, db *gorm.DB) *App {
	return &App{
		cfg: cfg,
		l:   l,
		db:  db,
	}
}

// Run 打开配置的来源并导入全部记录
func (a *App) Run(ctx context.Context) (*Summary, error) {
	src, err := a.openSource(ctx, a.cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("open source %s: %w", a.cfg.Source, err)
	}
	defer src.Close()

	a.l.Info("import started", zap.String("source", a.cfg.Source), zap.Int("concurrency", a.cfg.Concurrency))

	return a.Import(ctx, src)
}
