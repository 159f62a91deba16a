package main

import (
	"log"
	"os"

	"github.com/martinsuhendra/manta-sub002/internal/model"
	"github.com/martinsuhendra/manta-sub002/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Product{},
		&model.ProductItem{},
		&model.QuotaPool{},
		&model.Membership{},
		&model.MembershipQuotaUsage{},
		&model.FreezeRequest{},
		&model.Transaction{},
		&model.ClassItem{},
		&model.ClassSession{},
		&model.Booking{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Views
	log.Println("Step 3: Creating Views...")

	postMigrationSQL := []string{
		// View: member_payment_history
		`CREATE OR REPLACE VIEW member_payment_history AS
		 SELECT t.user_id, u.full_name, t.id AS transaction_id, t.amount, t.currency, t.status, t.paid_at, t.created_at AS payment_date
		 FROM transactions t
		 JOIN users u ON t.user_id = u.id;`,

		// View: active_membership_summary
		`CREATE OR REPLACE VIEW active_membership_summary AS
		 SELECT m.id AS membership_id, m.user_id, u.full_name, p.name AS product_name, m.status, m.expired_at
		 FROM memberships m
		 JOIN users u ON m.user_id = u.id
		 JOIN products p ON m.product_id = p.id
		 WHERE m.status IN ('ACTIVE', 'FREEZED');`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v. Continuing...", err)
		}
	}

	log.Println("Migration completed successfully!")
}
