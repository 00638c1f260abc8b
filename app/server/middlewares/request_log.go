package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func RequestLogger(l *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Log(levelForStatus(v.Status), "request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("requestID", v.RequestID),
				zap.String("remoteIP", v.RemoteIP),
			)

			return nil
		},
	})
}

func levelForStatus(code int) zapcore.Level {
	switch {
	case code >= 500:
		return zapcore.ErrorLevel
	case code >= 400:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
