package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// setupTestDB creates a temporary test database
func setupTestDB(t *testing.T) (*sql.DB, string) {
	// Create temporary directory
	tempDir := t.TempDir()

	// Initialize database
	db, err := InitDB(tempDir)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	return db, tempDir
}

// insertRecord inserts a row with an explicit timestamp for ordering tests
func insertRecord(t *testing.T, db *sql.DB, id, kind, filename string, byteSize, createdAt int64) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO generation_history (id, kind, filename, byte_size, created_at) VALUES (?, ?, ?, ?, ?)",
		id, kind, filename, byteSize, createdAt,
	)
	if err != nil {
		t.Fatalf("Failed to insert test record: %v", err)
	}
}

// TestInitDB tests that the database file and schema are created
func TestInitDB(t *testing.T) {
	db, tempDir := setupTestDB(t)
	defer db.Close()

	// Verify database file exists
	if _, err := os.Stat(filepath.Join(tempDir, "history.db")); err != nil {
		t.Fatalf("Expected history.db to exist: %v", err)
	}

	// Verify migration was applied
	var version int
	err := db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	if err != nil {
		t.Fatalf("Failed to query schema_migrations: %v", err)
	}
	if version != 1 {
		t.Errorf("Expected migration version 1, got %d", version)
	}

	// Verify the history table is usable
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM generation_history").Scan(&count); err != nil {
		t.Fatalf("Failed to query generation_history: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty generation_history, got %d rows", count)
	}
}

// TestRecord_Insert tests inserting a new generation record
func TestRecord_Insert(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	service := NewHistoryService(db)

	beforeSave := time.Now().UnixMilli()
	id, err := service.Record(KindPresentation, "sample_presentation.pptx", 54321)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	afterSave := time.Now().UnixMilli()

	if id == "" {
		t.Fatal("Expected non-empty ID")
	}

	// Verify record was saved
	var kind, filename string
	var byteSize, createdAt int64
	err = db.QueryRow(
		"SELECT kind, filename, byte_size, created_at FROM generation_history WHERE id = ?", id,
	).Scan(&kind, &filename, &byteSize, &createdAt)
	if err != nil {
		t.Fatalf("Failed to query record: %v", err)
	}

	if kind != KindPresentation {
		t.Errorf("Expected kind=%s, got %s", KindPresentation, kind)
	}
	if filename != "sample_presentation.pptx" {
		t.Errorf("Expected filename=sample_presentation.pptx, got %s", filename)
	}
	if byteSize != 54321 {
		t.Errorf("Expected byte_size=54321, got %d", byteSize)
	}
	if createdAt < beforeSave || createdAt > afterSave {
		t.Errorf("created_at timestamp out of expected range: %v", createdAt)
	}
}

// TestRecord_UniqueIDs tests that each record gets its own ID
func TestRecord_UniqueIDs(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	service := NewHistoryService(db)

	id1, err := service.Record(KindWorkbook, "sample_data.xlsx", 100)
	if err != nil {
		t.Fatalf("First Record failed: %v", err)
	}
	id2, err := service.Record(KindWorkbook, "sample_data.xlsx", 100)
	if err != nil {
		t.Fatalf("Second Record failed: %v", err)
	}

	if id1 == id2 {
		t.Errorf("Expected unique IDs, both were %s", id1)
	}
}

// TestRecord_ValidationErrors tests validation error handling
func TestRecord_ValidationErrors(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	service := NewHistoryService(db)

	tests := []struct {
		name        string
		kind        string
		filename    string
		byteSize    int64
		expectError bool
		errorMsg    string
	}{
		{
			name:        "Missing kind",
			kind:        "",
			filename:    "sample.pptx",
			byteSize:    10,
			expectError: true,
			errorMsg:    "kind is required",
		},
		{
			name:        "Missing filename",
			kind:        KindPresentation,
			filename:    "",
			byteSize:    10,
			expectError: true,
			errorMsg:    "filename is required",
		},
		{
			name:        "Negative byte size",
			kind:        KindPresentation,
			filename:    "sample.pptx",
			byteSize:    -1,
			expectError: true,
			errorMsg:    "byte size must not be negative",
		},
		{
			name:        "Valid record",
			kind:        KindReport,
			filename:    "sample_report.pdf",
			byteSize:    0,
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Record(tt.kind, tt.filename, tt.byteSize)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error containing '%s', got nil", tt.errorMsg)
				} else if err.Error() != tt.errorMsg {
					t.Errorf("Expected error '%s', got '%s'", tt.errorMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("Expected no error, got: %v", err)
				}
			}
		})
	}
}

// TestRecord_NilDatabase tests error handling when database is nil
func TestRecord_NilDatabase(t *testing.T) {
	service := NewHistoryService(nil)

	_, err := service.Record(KindPresentation, "sample.pptx", 10)
	if err == nil {
		t.Error("Expected error when database is nil, got nil")
	}

	expectedMsg := "database connection is nil"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error '%s', got '%s'", expectedMsg, err.Error())
	}
}

// TestList_NewestFirst tests that records come back newest first
func TestList_NewestFirst(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	service := NewHistoryService(db)

	base := time.Now().UnixMilli()
	insertRecord(t, db, "id-old", KindPresentation, "old.pptx", 1, base-2000)
	insertRecord(t, db, "id-mid", KindWorkbook, "mid.xlsx", 2, base-1000)
	insertRecord(t, db, "id-new", KindReport, "new.pdf", 3, base)

	records, err := service.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	expected := []string{"id-new", "id-mid", "id-old"}
	for i, id := range expected {
		if records[i].ID != id {
			t.Errorf("records[%d].ID = %s, want %s", i, records[i].ID, id)
		}
	}
}

// TestList_Limit tests that the limit is applied
func TestList_Limit(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	service := NewHistoryService(db)

	base := time.Now().UnixMilli()
	for i := 0; i < 5; i++ {
		insertRecord(t, db, fmt.Sprintf("id-%d", i), KindDocument, "doc.docx", int64(i), base+int64(i))
	}

	records, err := service.List(3)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("Expected 3 records with limit 3, got %d", len(records))
	}

	// Newest of the five comes first
	if records[0].ID != "id-4" {
		t.Errorf("Expected newest record id-4 first, got %s", records[0].ID)
	}
}

// TestList_DefaultLimit tests that a non-positive limit falls back to the default
func TestList_DefaultLimit(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	service := NewHistoryService(db)

	base := time.Now().UnixMilli()
	for i := 0; i < 4; i++ {
		insertRecord(t, db, fmt.Sprintf("id-%d", i), KindWorkbook, "data.xlsx", int64(i), base+int64(i))
	}

	records, err := service.List(0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 4 {
		t.Errorf("Expected all 4 records with default limit, got %d", len(records))
	}

	records, err = service.List(-7)
	if err != nil {
		t.Fatalf("List with negative limit failed: %v", err)
	}
	if len(records) != 4 {
		t.Errorf("Expected all 4 records with negative limit, got %d", len(records))
	}
}

// TestList_Empty tests listing with no history
func TestList_Empty(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	service := NewHistoryService(db)

	records, err := service.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}

// TestList_NilDatabase tests error handling when database is nil
func TestList_NilDatabase(t *testing.T) {
	service := NewHistoryService(nil)

	_, err := service.List(10)
	if err == nil {
		t.Error("Expected error when database is nil, got nil")
	}
}

// TestGet_Success tests fetching a single record by ID
func TestGet_Success(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	service := NewHistoryService(db)

	id, err := service.Record(KindDocument, "sample_report.docx", 2048)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	rec, err := service.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if rec == nil {
		t.Fatal("Expected non-nil record")
	}
	if rec.ID != id {
		t.Errorf("Expected ID=%s, got %s", id, rec.ID)
	}
	if rec.Kind != KindDocument {
		t.Errorf("Expected Kind=%s, got %s", KindDocument, rec.Kind)
	}
	if rec.Filename != "sample_report.docx" {
		t.Errorf("Expected Filename=sample_report.docx, got %s", rec.Filename)
	}
	if rec.ByteSize != 2048 {
		t.Errorf("Expected ByteSize=2048, got %d", rec.ByteSize)
	}
	if rec.CreatedAt == 0 {
		t.Error("Expected CreatedAt to be set")
	}
}

// TestGet_NotFound tests fetching a record that doesn't exist
func TestGet_NotFound(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	service := NewHistoryService(db)

	rec, err := service.Get("nonexistent-id")
	if err == nil {
		t.Error("Expected error when record not found, got nil")
	}
	if rec != nil {
		t.Error("Expected nil record when not found")
	}

	expectedMsg := "no generation record found: nonexistent-id"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error '%s', got '%s'", expectedMsg, err.Error())
	}
}

// TestGet_EmptyID tests error handling for empty ID
func TestGet_EmptyID(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	service := NewHistoryService(db)

	rec, err := service.Get("")
	if err == nil {
		t.Error("Expected error when ID is empty, got nil")
	}
	if rec != nil {
		t.Error("Expected nil record when ID is empty")
	}

	expectedMsg := "id is required"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error '%s', got '%s'", expectedMsg, err.Error())
	}
}

// TestGet_NilDatabase tests error handling when database is nil
func TestGet_NilDatabase(t *testing.T) {
	service := NewHistoryService(nil)

	rec, err := service.Get("some-id")
	if err == nil {
		t.Error("Expected error when database is nil, got nil")
	}
	if rec != nil {
		t.Error("Expected nil record when database is nil")
	}
}

// TestCountByKind tests per-kind counting
func TestCountByKind(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	service := NewHistoryService(db)

	for i := 0; i < 3; i++ {
		if _, err := service.Record(KindPresentation, "deck.pptx", 10); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	if _, err := service.Record(KindWorkbook, "data.xlsx", 10); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	count, err := service.CountByKind(KindPresentation)
	if err != nil {
		t.Fatalf("CountByKind failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 presentations, got %d", count)
	}

	count, err = service.CountByKind(KindWorkbook)
	if err != nil {
		t.Fatalf("CountByKind failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 workbook, got %d", count)
	}

	count, err = service.CountByKind(KindReport)
	if err != nil {
		t.Fatalf("CountByKind failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 reports, got %d", count)
	}
}

// TestCountByKind_EmptyKind tests error handling for empty kind
func TestCountByKind_EmptyKind(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	service := NewHistoryService(db)

	_, err := service.CountByKind("")
	if err == nil {
		t.Error("Expected error when kind is empty, got nil")
	}

	expectedMsg := "kind is required"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error '%s', got '%s'", expectedMsg, err.Error())
	}
}

// TestTotal tests counting across all kinds
func TestTotal(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	service := NewHistoryService(db)

	total, err := service.Total()
	if err != nil {
		t.Fatalf("Total failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Expected 0 before any records, got %d", total)
	}

	kinds := []string{KindPresentation, KindWorkbook, KindDocument, KindReport}
	for i, kind := range kinds {
		if _, err := service.Record(kind, fmt.Sprintf("file-%d", i), int64(i)); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	total, err = service.Total()
	if err != nil {
		t.Fatalf("Total failed: %v", err)
	}
	if total != len(kinds) {
		t.Errorf("Expected %d records, got %d", len(kinds), total)
	}
}

// TestTotal_NilDatabase tests error handling when database is nil
func TestTotal_NilDatabase(t *testing.T) {
	service := NewHistoryService(nil)

	_, err := service.Total()
	if err == nil {
		t.Error("Expected error when database is nil, got nil")
	}
}
