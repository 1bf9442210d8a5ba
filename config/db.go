package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DriverName returns the configured database driver: "mysql" (default) or "sqlite".
func DriverName() string {
	if os.Getenv("DB_DRIVER") == "sqlite" {
		return "sqlite"
	}
	return "mysql"
}

// NewDB opens a GORM connection for the configured driver.
func NewDB() (*gorm.DB, error) {
	logMode := logger.Info
	if os.Getenv("GORM_LOG") == "off" {
		logMode = logger.Silent
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logMode,
			Colorful:      true,
		},
	)

	if DriverName() == "sqlite" {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "storefront.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLogger})
	}

	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		user := os.Getenv("MYSQL_USER")
		pass := os.Getenv("MYSQL_PASS")
		host := os.Getenv("MYSQL_HOST")
		port := os.Getenv("MYSQL_PORT")
		db := os.Getenv("MYSQL_DB")
		if port == "" {
			port = "3306"
		}
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=Local", user, pass, host, port, db)
	}

	return gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
}
