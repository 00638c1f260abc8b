package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"log"
	"net/http"
	"os"
	"os/signal"
	"seed-inventory/app/server/apidocs"
	"seed-inventory/app/server/gen/oapi"
	"seed-inventory/app/server/handlers"
	"seed-inventory/app/server/inits"
	"seed-inventory/app/server/jwt"
	"seed-inventory/app/server/middlewares"
	"syscall"
	"time"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd, "server")
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer l.Sync()

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接（可选）
	var rdb *redis.Client
	if cfg.System.RedisConnectionString != "" {
		if rdb, err = inits.Redis(cfg.System.RedisConnectionString); err != nil {
			l.Fatal("error initializing Redis connection", zap.Error(err))
		}
	} else {
		l.Info("REDIS_CONN not set, record cache disabled")
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, rdb, j, cfg)

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middlewares.RequestLogger(l))
	e.Use(middleware.Recover())

	// 绑定 echo 服务
	if err = handlers.RegisterHandlers(e, handlerApp, middlewares.TokenAuth(j, l)); err != nil {
		l.Fatal("error registering handlers", zap.Error(err))
	}

	// 添加 API 文档
	if swg, err := oapi.GetSwagger(); err != nil {
		l.Error("error initializing swagger", zap.Error(err))
	} else if swgJson, err := swg.MarshalJSON(); err != nil {
		l.Error("error initializing swagger", zap.Error(err))
	} else {
		e.Pre(apidocs.Doc("/api-docs", swgJson))
	}

	// 收到中断信号后优雅退出
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 启动 echo 服务
	go func() {
		if err := e.Start(cfg.System.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	l.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		l.Error("error shutting down the server", zap.Error(err))
	}

	// 释放连接
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			l.Error("error closing Redis connection", zap.Error(err))
		}
	}
	if err := inits.CloseDB(db); err != nil {
		l.Error("error closing DB connection", zap.Error(err))
	}
}
