// Command setup creates the ledger database if needed and applies migrations.
// With -reset the database is dropped and recreated first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/Ycine_Go/internal/config"
	"github.com/osse101/Ycine_Go/internal/database"
)

var dbNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func main() {
	reset := flag.Bool("reset", false, "drop and recreate the database before migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if !dbNamePattern.MatchString(cfg.DBName) {
		log.Fatalf("Refusing unsafe database name %q", cfg.DBName)
	}

	ctx := context.Background()

	// 1. Connect to the default 'postgres' database to manage the target
	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, serverConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	if *reset {
		log.Printf("Dropping database %s if it exists...", cfg.DBName)
		if _, err := conn.Exec(ctx, `
			SELECT pg_terminate_backend(pid)
			FROM pg_stat_activity
			WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName); err != nil {
			log.Printf("Warning: failed to terminate connections: %v", err)
		}
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
			log.Fatalf("Failed to drop database: %v", err)
		}
	}

	// 2. Create the database when missing
	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists); err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}
	if !exists {
		log.Printf("Creating database %s...", cfg.DBName)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
	} else {
		log.Printf("Database %s already exists.", cfg.DBName)
	}
	conn.Close(ctx)

	// 3. Apply embedded migrations to the target database
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Database ready.")
}
