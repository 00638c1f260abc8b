package main

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"log"
	"os"
	"os/signal"
	"seed-inventory/app/importer/handlers"
	"seed-inventory/app/importer/inits"
	serverinits "seed-inventory/app/server/inits"
	"syscall"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := serverinits.Logger(!cfg.IsProd, "importer")
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer l.Sync()

	// 切换日志系统
	l.Debug("logger initialized")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 初始化数据库连接
	db, err := serverinits.DB(cfg.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}
	l.Info("database connected")

	// 执行导入，单行失败不会中止
	handlerApp := handlers.NewApp(cfg, l, db)
	if _, err := handlerApp.Run(ctx); err != nil {
		l.Error("import failed", zap.Error(err))
	}

	// 保持连接直到收到中断信号
	if !cfg.ExitOnDone {
		<-ctx.Done()
	}

	if err := serverinits.CloseDB(db); err != nil {
		l.Error("error closing DB connection", zap.Error(err))
	}
	l.Info("database connection closed")
}
