// +build ignore

package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZehnMilliarden/python-pptx/database"
)

// This is a standalone verification script to demonstrate the migration system
// Run with: go run verify_migration.go

func main() {
	// Create temporary directory for demonstration
	tempDir, err := os.MkdirTemp("", "pptxgen-verify-*")
	if err != nil {
		fmt.Printf("Failed to create temp directory: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(tempDir)

	fmt.Printf("Using temporary directory: %s\n\n", tempDir)

	// Initialize database
	fmt.Println("Initializing database...")
	db, err := database.InitDB(tempDir)
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	dbPath := filepath.Join(tempDir, "history.db")
	fmt.Printf("Database created at: %s\n\n", dbPath)

	// Verify schema_migrations table
	fmt.Println("Checking schema_migrations table...")
	rows, err := db.Query("SELECT version, description, applied_at FROM schema_migrations ORDER BY version")
	if err != nil {
		fmt.Printf("Failed to query migrations: %v\n", err)
		os.Exit(1)
	}
	defer rows.Close()

	fmt.Println("\nApplied Migrations:")
	fmt.Println("-------------------")
	for rows.Next() {
		var version int
		var description, appliedAt string
		if err := rows.Scan(&version, &description, &appliedAt); err != nil {
			fmt.Printf("Failed to scan row: %v\n", err)
			continue
		}
		fmt.Printf("Version %d: %s (applied at %s)\n", version, description, appliedAt)
	}

	// Verify generation_history table
	fmt.Println("\nChecking generation_history table...")
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='generation_history'").Scan(&count)
	if err != nil {
		fmt.Printf("Failed to check table: %v\n", err)
		os.Exit(1)
	}
	if count == 1 {
		fmt.Println("✓ generation_history table exists")
	} else {
		fmt.Println("✗ generation_history table not found")
		os.Exit(1)
	}

	// Verify table schema
	fmt.Println("\nTable Schema:")
	fmt.Println("-------------")
	schemaRows, err := db.Query("PRAGMA table_info(generation_history)")
	if err != nil {
		fmt.Printf("Failed to query schema: %v\n", err)
		os.Exit(1)
	}
	defer schemaRows.Close()

	for schemaRows.Next() {
		var cid int
		var name, colType string
		var notNull, pk int
		var dfltValue sql.NullString

		if err := schemaRows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			fmt.Printf("Failed to scan schema: %v\n", err)
			continue
		}

		pkStr := ""
		if pk == 1 {
			pkStr = " (PRIMARY KEY)"
		}
		notNullStr := ""
		if notNull == 1 {
			notNullStr = " NOT NULL"
		}
		defaultStr := ""
		if dfltValue.Valid {
			defaultStr = fmt.Sprintf(" DEFAULT %s", dfltValue.String)
		}

		fmt.Printf("  %s: %s%s%s%s\n", name, colType, notNullStr, defaultStr, pkStr)
	}

	// Verify index
	fmt.Println("\nChecking indexes...")
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND name='idx_history_kind'").Scan(&count)
	if err != nil {
		fmt.Printf("Failed to check index: %v\n", err)
		os.Exit(1)
	}
	if count == 1 {
		fmt.Println("✓ idx_history_kind index exists")
	} else {
		fmt.Println("✗ idx_history_kind index not found")
		os.Exit(1)
	}

	// Test recording through the service
	fmt.Println("\nTesting history recording...")
	history := database.NewHistoryService(db)
	id, err := history.Record(database.KindPresentation, "/tmp/sample_presentation.pptx", 12345)
	if err != nil {
		fmt.Printf("Failed to record test entry: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Successfully recorded entry %s\n", id)

	// Verify the record
	rec, err := history.Get(id)
	if err != nil {
		fmt.Printf("Failed to read test entry back: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Retrieved record: kind=%s, filename=%s, byte_size=%d\n", rec.Kind, rec.Filename, rec.ByteSize)

	// Test input validation
	fmt.Println("\nTesting input validation...")
	if _, err := history.Record("", "orphan.bin", 1); err != nil {
		fmt.Println("✓ Validation working correctly (empty kind rejected)")
	} else {
		fmt.Println("✗ Validation not working (empty kind accepted)")
		os.Exit(1)
	}

	fmt.Println("\n✓ All verification checks passed!")
	fmt.Println("\nMigration system is working correctly.")
}
