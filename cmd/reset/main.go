package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/osse101/FairSlots_Go/internal/config"
	"github.com/osse101/FairSlots_Go/internal/database"
)

const (
	maintenanceDB = "postgres"
	resetTimeout  = time.Minute
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	user := envOr(config.EnvDBUser, config.DefaultDBUser)
	password := envOr(config.EnvDBPassword, config.DefaultDBPassword)
	host := envOr(config.EnvDBHost, config.DefaultDBHost)
	port := envOr(config.EnvDBPort, config.DefaultDBPort)
	dbName := envOr(config.EnvDBName, config.DefaultDBName)

	ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
	defer cancel()

	serverPool, err := database.NewPool(ctx, database.ConnString(user, password, host, port, maintenanceDB),
		2, time.Minute, time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}

	ident := pgx.Identifier{dbName}.Sanitize()

	log.Printf("Terminating existing connections to database %s...", dbName)
	if _, err := serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, dbName); err != nil {
		log.Printf("Warning: failed to terminate connections: %v", err)
	}

	log.Printf("Dropping database %s if it exists...", dbName)
	if _, err := serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		serverPool.Close()
		log.Fatalf("Failed to drop database: %v", err)
	}

	log.Printf("Creating database %s...", dbName)
	if _, err := serverPool.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		serverPool.Close()
		log.Fatalf("Failed to create database: %v", err)
	}
	serverPool.Close()

	pool, err := database.NewPool(ctx, database.ConnString(user, password, host, port, dbName),
		2, time.Minute, time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", dbName, err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Printf("Database %s reset and migrated", dbName)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
