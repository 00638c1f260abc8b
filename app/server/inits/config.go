package inits

import (
	"fmt"
	"os"
	"seed-inventory/app/server/config"
	"strconv"
	"strings"
)

// 默认监听地址
const defaultListen = ":3001"

func Config() (*config.Config, error) {
	cfg := &config.Config{}

	// 旧部署使用 NODE_ENV=production ，这里一并识别
	if mode, exist := LookupEnv("MODE", "NODE_ENV"); exist {
		cfg.System.IsProd = strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := LookupEnv("LISTEN"); exist {
		cfg.System.Listen = listen
	} else if port, exist := LookupEnv("API_PORT"); exist {
		cfg.System.Listen = listenFromPort(port)
	} else {
		cfg.System.Listen = defaultListen
	}

	if dbconn, exist := LookupEnv("DB_CONN", "MONGO_URI"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := LookupEnv("REDIS_CONN"); exist {
		cfg.System.RedisConnectionString = redisconn
	}

	if sigsk, exist := LookupEnv("TOKEN_KEY", "SIGNATURE_SECRET_KEY"); !exist {
		return nil, fmt.Errorf("TOKEN_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if legacy, exist := LookupEnv("LEGACY_STATUS_CODES"); exist {
		v, err := strconv.ParseBool(legacy)
		if err != nil {
			return nil, fmt.Errorf("LEGACY_STATUS_CODES should be a boolean")
		}
		cfg.Compat.LegacyStatusCodes = v
	}

	return cfg, nil
}

// LookupEnv 按顺序查找环境变量，返回第一个非空的值
func LookupEnv(keys ...string) (string, bool) {
	for _, key := range keys {
		if v, exist := os.LookupEnv(key); exist && v != "" {
			return v, true
		}
	}
	return "", false
}

// 只给了端口号时补全为监听地址
func listenFromPort(port string) string {
	if _, err := strconv.Atoi(port); err == nil {
		return ":" + port
	}
	return port
}
