package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a GORM connection for the configured driver. For mysql the
// target schema is created first if it does not exist yet, so a fresh
// deployment needs no manual setup.
func Connect(cfg Config) (*gorm.DB, error) {
	// Suppress GORM's own logging; the application logger covers requests.
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	if cfg.Driver == "sqlite" {
		// Foreign keys are off by default in sqlite and the schema relies
		// on them for cascade and restrict behavior.
		sep := "?"
		if strings.Contains(cfg.Name, "?") {
			sep = "&"
		}
		dsn := cfg.Name + sep + "_foreign_keys=on"
		db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		// A single connection keeps :memory: databases alive and sidesteps
		// sqlite's single-writer locking.
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	if err := createDatabaseIfNotExists(cfg, timeout); err != nil {
		return nil, err
	}

	// Special characters in the password must be URL encoded in the DSN.
	userInfo := url.UserPassword(cfg.User, cfg.Password).String()
	dsn := fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// createDatabaseIfNotExists connects to the mysql server without selecting
// a schema and issues CREATE DATABASE IF NOT EXISTS for the target.
func createDatabaseIfNotExists(cfg Config, timeout int) error {
	userInfo := url.UserPassword(cfg.User, cfg.Password).String()
	dsn := fmt.Sprintf("%s@tcp(%s:%d)/?timeout=%ds", userInfo, cfg.Host, cfg.Port, timeout)

	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open server connection: %w", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	stmt := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET utf8mb4", cfg.Name)
	if _, err := conn.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	return nil
}
