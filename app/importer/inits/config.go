package inits

import (
	"fmt"
	"seed-inventory/app/importer/config"
	serverinits "seed-inventory/app/server/inits"
	"strconv"
	"strings"
)

const (
	defaultSource      = "./DataBase.csv"
	defaultConcurrency = 8
	defaultS3Region    = "us-east-1"
)

func Config() (*config.Config, error) {
	var cfg config.Config
	if mode, exist := serverinits.LookupEnv("MODE", "NODE_ENV"); exist {
		cfg.IsProd = strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if dbconn, exist := serverinits.LookupEnv("DB_CONN", "MONGO_URI"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.DBConnectionString = dbconn
	}

	if source, exist := serverinits.LookupEnv("IMPORT_SOURCE"); !exist {
		cfg.Source = defaultSource
	} else {
		cfg.Source = source
	}

	if concurrencyStr, exist := serverinits.LookupEnv("IMPORT_CONCURRENCY"); !exist {
		cfg.Concurrency = defaultConcurrency
	} else if concurrency, err := strconv.Atoi(concurrencyStr); err != nil || concurrency < 1 {
		return nil, fmt.Errorf("IMPORT_CONCURRENCY should be a positive integer")
	} else {
		cfg.Concurrency = concurrency
	}

	if exitStr, exist := serverinits.LookupEnv("IMPORT_EXIT_ON_DONE"); exist {
		exit, err := strconv.ParseBool(exitStr)
		if err != nil {
			return nil, fmt.Errorf("IMPORT_EXIT_ON_DONE should be a boolean")
		}
		cfg.ExitOnDone = exit
	}

	if region, exist := serverinits.LookupEnv("S3_REGION"); !exist {
		cfg.S3.Region = defaultS3Region
	} else {
		cfg.S3.Region = region
	}
	cfg.S3.Endpoint, _ = serverinits.LookupEnv("S3_ENDPOINT")
	cfg.S3.AccessKey, _ = serverinits.LookupEnv("S3_ACCESS_KEY")
	cfg.S3.SecretKey, _ = serverinits.LookupEnv("S3_SECRET_KEY")

	return &cfg, nil
}
