package config

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB holds the MySQL connection used by the identity store.
var DB *gorm.DB
var err error

// InitDB opens the MySQL connection for user accounts.
func InitDB() {
	dsn := os.Getenv("DB_DSN")
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Error connecting to the database:", err)
	}
	log.Println("Database connected")
}
