// Package db opens the MySQL connection used by the gorm-backed store.
package db

import (
	"errors"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL opens a GORM handle on the sportive database.
func NewMySQL(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("empty mysql dsn")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}
