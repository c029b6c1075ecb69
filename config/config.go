package config

import (
	"log"
	"os"

	"food-rescue-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — refreshed by LoadEnv once .env is read
var JWTSecret = []byte(getEnv("JWT_SECRET", "food_rescue_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv reads .env into the process environment. A missing file is fine;
// deployments set real environment variables instead.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "food_rescue_super_secret_2024"))
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "food_rescue.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := MigrateModels(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}

// MigrateModels runs the schema migration for every entity. Shared with the
// test setup so the model list lives in one place.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.NGO{},
		&models.FoodItem{},
		&models.Order{},
		&models.OrderLine{},
		&models.Notification{},
		&models.Message{},
		&models.FAQ{},
	)
}
