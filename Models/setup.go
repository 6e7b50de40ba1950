package Models

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ErrNotConnected is returned by every data operation when the startup
// connection never succeeded.
var ErrNotConnected = errors.New("database is not connected")

func Connect() {
	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "3306")
	user := envOr("DB_USER", "root")
	password := os.Getenv("DB_PASSWORD")
	name := envOr("DB_NAME", "task_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, name)

	connection, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	DB = connection
	if err != nil {
		// The server still comes up; data operations fail until the
		// database is reachable again and the process is restarted.
		log.Println("Error connecting to task database:", err)
		return
	}

	if err := DB.AutoMigrate(&Task{}); err != nil {
		log.Println("Error migrating tasks table:", err)
	}

	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	log.Println("Connected to task database")
}

// Ping reports whether the database behind db is reachable.
func Ping(db *gorm.DB) error {
	if db == nil {
		return ErrNotConnected
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
