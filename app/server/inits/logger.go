package inits

import (
	"fmt"
	"go.uber.org/zap"
)

// Logger 开发模式下使用可读的控制台输出，生产模式下输出 JSON
func Logger(debugMode bool, name string) (*zap.Logger, error) {
	var zcfg zap.Config
	if debugMode {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}

	// 允许通过 LOG_LEVEL 覆盖默认级别
	if lvl, exist := LookupEnv("LOG_LEVEL"); exist {
		level, err := zap.ParseAtomicLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", lvl, err)
		}
		zcfg.Level = level
	}

	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l.Named(name), nil
}
