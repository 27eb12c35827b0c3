package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sakthirv/portfolio-backend/api"
	"github.com/sakthirv/portfolio-backend/config"
	"github.com/sakthirv/portfolio-backend/database"
	"github.com/sakthirv/portfolio-backend/models"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()

	connStr := config.GetString(cfg, "DATABASE_URL", "")
	if connStr == "" {
		connStr = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			config.GetString(cfg, "DB_HOST", "localhost"),
			config.GetString(cfg, "DB_USER", "postgres"),
			config.GetString(cfg, "DB_PASSWORD", ""),
			config.GetString(cfg, "DB_NAME", "portfolio"),
			config.GetString(cfg, "DB_PORT", "5432"),
			config.GetString(cfg, "DB_SSLMODE", "disable"),
		)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	// The unique index on (imported_from, external_id) is part of the
	// schema; migration must run before any import request is served.
	if err := db.AutoMigrate(&models.Project{}, &models.User{}); err != nil {
		fmt.Printf("Error migrating database schema: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	if err := seedDefaultAdmin(currentDB, cfg); err != nil {
		fmt.Printf("Error seeding default admin: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// seedDefaultAdmin creates the admin account from ADMIN_USERNAME and
// ADMIN_PASSWORD when it does not exist yet. Skipped when the variables are
// unset, so an already-provisioned database needs no credentials in the
// environment.
func seedDefaultAdmin(db database.Database, cfg map[string]string) error {
	username := config.GetString(cfg, "ADMIN_USERNAME", "")
	password := config.GetString(cfg, "ADMIN_PASSWORD", "")
	if username == "" || password == "" {
		fmt.Println("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	existing, err := db.UserRepo().FindByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	admin := models.User{Username: username}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	if err := db.UserRepo().Add(&admin); err != nil {
		return err
	}

	fmt.Printf("Default admin created: %s\n", username)
	return nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
