package inits

import (
	"fmt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"seed-inventory/app/server/models"
)

func DB(conn string) (db *gorm.DB, err error) {
	// 打开连接
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{
		TranslateError: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 返回
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Record{},
	)
}

// CloseDB 释放连接池
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql db: %w", err)
	}
	return sqlDB.Close()
}
