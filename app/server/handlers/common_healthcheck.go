package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) HealthCheck(c echo.Context) error {
	sqlDB, err := a.db.DB()
	if err != nil {
		a.l.Error("failed to get sql db", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	}

	// 检查数据库是否可用
	if err = sqlDB.PingContext(c.Request().Context()); err != nil {
		a.l.Error("database ping failed", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
