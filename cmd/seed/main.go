package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"shotline/internal/auth"
	"shotline/internal/config"
	"shotline/internal/domain/models"
	"shotline/internal/repository/postgres"
)

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't create the default admin")
	adminPassword := flag.String("admin-password", "admin", "Password for the bootstrap admin account")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: cannot run --drop-tables in production environment")
	}

	log.Printf("Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Drop tables if requested
	if *dropTables {
		log.Println("Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("Schema ready")

	if *schemaOnly {
		log.Println("Schema setup complete (schema-only mode)")
		return
	}

	// Bootstrap admin so the instance is reachable on first start
	if err := ensureAdminUser(ctx, pool, tables, *adminPassword); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Println("Seed complete")
}

// ensureAdminUser creates the bootstrap admin account if no user named
// admin exists yet
func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, password string) error {
	var count int
	err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+tables.Users+` WHERE username = 'admin'`).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin user already exists, skipping")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO `+tables.Users+` (id, username, pwd_hash, role, display_name, created_at)
		VALUES ($1, 'admin', $2, $3, 'Administrator', $4)
	`, uuid.NewString(), hash, models.RoleAdmin, time.Now())
	if err != nil {
		return err
	}

	log.Println("Admin user created (username: admin)")
	return nil
}

func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, tablePrefix string) error {
	// Create users table
	createUsers := `
		CREATE TABLE IF NOT EXISTS ` + tables.Users + ` (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			pwd_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			display_name TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createUsers); err != nil {
		return err
	}

	// Create projects table
	createProjects := `
		CREATE TABLE IF NOT EXISTS ` + tables.Projects + ` (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			short TEXT NOT NULL DEFAULT '',
			start_date TEXT NOT NULL DEFAULT '',
			details_text TEXT NOT NULL DEFAULT '',
			folder_path TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createProjects); err != nil {
		return err
	}

	// Create shots table. The unique constraint is the real guard
	// against duplicate codes; the importer's check only shapes the
	// error messages.
	createShots := `
		CREATE TABLE IF NOT EXISTS ` + tables.Shots + ` (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			code TEXT NOT NULL,
			reel TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			assigned_to TEXT NOT NULL DEFAULT '',
			start_date TEXT NOT NULL DEFAULT '',
			due_date TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'Not Started',
			plate_path TEXT NOT NULL DEFAULT '',
			mov_path TEXT NOT NULL DEFAULT '',
			exr_path TEXT NOT NULL DEFAULT '',
			version TEXT NOT NULL DEFAULT '',
			nuke_path TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			UNIQUE(project_id, code)
		)
	`
	if _, err := pool.Exec(ctx, createShots); err != nil {
		return err
	}

	// Create comments table
	createComments := `
		CREATE TABLE IF NOT EXISTS ` + tables.Comments + ` (
			id TEXT PRIMARY KEY,
			shot_id TEXT NOT NULL REFERENCES ` + tables.Shots + `(id) ON DELETE CASCADE,
			author TEXT NOT NULL,
			author_username TEXT NOT NULL,
			author_role TEXT NOT NULL DEFAULT '',
			text TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createComments); err != nil {
		return err
	}

	// Create indexes
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `shots_project_id ON ` + tables.Shots + `(project_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `comments_shot_id ON ` + tables.Comments + `(shot_id)`,
	}
	for _, idx := range indexes {
		if _, err := pool.Exec(ctx, idx); err != nil {
			return err
		}
	}

	return nil
}

func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	// Children first so the foreign keys don't object
	drops := []string{
		`DROP TABLE IF EXISTS ` + tables.Comments,
		`DROP TABLE IF EXISTS ` + tables.Shots,
		`DROP TABLE IF EXISTS ` + tables.Projects,
		`DROP TABLE IF EXISTS ` + tables.Users,
	}
	for _, drop := range drops {
		if _, err := pool.Exec(ctx, drop); err != nil {
			return err
		}
	}
	return nil
}
