package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/RCOSDP/weko-itemtype/config"
	"github.com/RCOSDP/weko-itemtype/internal/domain/itemtype"
	"github.com/RCOSDP/weko-itemtype/internal/domain/user"
	"github.com/RCOSDP/weko-itemtype/pkg/database"
)

const usage = `
Item Type Registry - Database CLI Tool

Usage:
  migrate [command] [flags]

Commands:
  up          Run all migrations (SQL + GORM)
  status      Show database connection status
  seed        Seed the database with the admin account and base properties
  reset       Drop all tables and re-run migrations (DANGEROUS)

Flags:
  -migrations string   Path to migrations directory (default "migrations")
  -admin-email string  Admin email for seeding (default "admin@registry.local")
  -admin-pass string   Admin password for seeding (default "Admin@123!")

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go seed
  go run cmd/migrate/main.go reset
`

func main() {
	migrationsDir := flag.String("migrations", "migrations", "Path to migrations directory")
	adminEmail := flag.String("admin-email", "admin@registry.local", "Admin email for seeding")
	adminPass := flag.String("admin-pass", "Admin@123!", "Admin password for seeding")

	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.LoadConfig()
	database.Connect(cfg)

	switch flag.Arg(0) {
	case "up":
		runUp(*migrationsDir)
	case "status":
		runStatus()
	case "seed":
		runSeed(*adminEmail, *adminPass)
	case "reset":
		runReset(*migrationsDir)
	default:
		flag.Usage()
		os.Exit(1)
	}
}

func runUp(migrationsDir string) {
	if err := database.ApplyRawMigrations(migrationsDir); err != nil {
		log.Fatalf("Raw migrations failed: %v", err)
	}
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("GORM migrations failed: %v", err)
	}
	log.Println("Migrations applied")
}

func runStatus() {
	if err := database.HealthCheck(); err != nil {
		log.Fatalf("Database unhealthy: %v", err)
	}
	log.Println("Database connection healthy")
}

func runSeed(adminEmail, adminPass string) {
	cfg := database.DefaultSeedConfig()
	cfg.AdminEmail = adminEmail
	cfg.AdminPassword = adminPass
	if err := database.Seed(database.DB, cfg); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}

func runReset(migrationsDir string) {
	err := database.DB.Migrator().DropTable(
		&itemtype.Mapping{},
		&itemtype.Property{},
		&itemtype.ItemType{},
		&user.User{},
	)
	if err != nil {
		log.Fatalf("Drop tables failed: %v", err)
	}
	log.Println("Tables dropped")
	runUp(migrationsDir)
}
