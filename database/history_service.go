package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Generation kinds recorded in history.
const (
	KindPresentation = "presentation"
	KindWorkbook     = "workbook"
	KindDocument     = "document"
	KindReport       = "report"
)

// GenerationRecord represents one generated sample file
type GenerationRecord struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`      // presentation, workbook, document or report
	Filename  string `json:"filename"`  // 生成文件的完整路径
	ByteSize  int64  `json:"byteSize"`  // 文件字节数
	CreatedAt int64  `json:"createdAt"` // Unix 毫秒时间戳
}

// HistoryService provides methods for recording generated files
type HistoryService struct {
	db *sql.DB
}

// NewHistoryService creates a new HistoryService instance
func NewHistoryService(db *sql.DB) *HistoryService {
	return &HistoryService{
		db: db,
	}
}

// Record saves one generation entry and returns its ID
func (s *HistoryService) Record(kind, filename string, byteSize int64) (string, error) {
	if s.db == nil {
		return "", fmt.Errorf("database connection is nil")
	}

	// Validate required fields
	if kind == "" {
		return "", fmt.Errorf("kind is required")
	}
	if filename == "" {
		return "", fmt.Errorf("filename is required")
	}
	if byteSize < 0 {
		return "", fmt.Errorf("byte size must not be negative")
	}

	id := uuid.New().String()
	now := time.Now().UnixMilli()

	query := `
		INSERT INTO generation_history (id, kind, filename, byte_size, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := s.db.Exec(query, id, kind, filename, byteSize, now); err != nil {
		return "", fmt.Errorf("failed to insert generation record: %w", err)
	}

	return id, nil
}

// List returns the most recent generation records, newest first.
// A limit of zero or less falls back to 50.
func (s *HistoryService) List(limit int) ([]GenerationRecord, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, kind, filename, byte_size, created_at
		FROM generation_history
		ORDER BY created_at DESC, id
		LIMIT ?
	`
	return queryRows(s.db, query, []interface{}{limit}, func(rows *sql.Rows) ([]GenerationRecord, error) {
		records := make([]GenerationRecord, 0, limit)
		for rows.Next() {
			var rec GenerationRecord
			if err := rows.Scan(&rec.ID, &rec.Kind, &rec.Filename, &rec.ByteSize, &rec.CreatedAt); err != nil {
				return nil, fmt.Errorf("failed to scan generation record: %w", err)
			}
			records = append(records, rec)
		}
		return records, nil
	})
}

// Get returns a single record by ID
func (s *HistoryService) Get(id string) (*GenerationRecord, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}

	var rec GenerationRecord
	query := `
		SELECT id, kind, filename, byte_size, created_at
		FROM generation_history
		WHERE id = ?
	`
	err := s.db.QueryRow(query, id).Scan(&rec.ID, &rec.Kind, &rec.Filename, &rec.ByteSize, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no generation record found: %s", id)
	} else if err != nil {
		return nil, fmt.Errorf("failed to query generation record: %w", err)
	}

	return &rec, nil
}

// CountByKind returns how many files of one kind have been generated
func (s *HistoryService) CountByKind(kind string) (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("database connection is nil")
	}
	if kind == "" {
		return 0, fmt.Errorf("kind is required")
	}

	var count int
	query := "SELECT COUNT(*) FROM generation_history WHERE kind = ?"
	if err := querySingleValue(s.db, query, []interface{}{kind}, &count); err != nil {
		return 0, fmt.Errorf("failed to count generation history: %w", err)
	}
	return count, nil
}

// Total returns the number of recorded generations across all kinds
func (s *HistoryService) Total() (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("database connection is nil")
	}

	var count int
	if err := querySingleValue(s.db, "SELECT COUNT(*) FROM generation_history", nil, &count); err != nil {
		return 0, fmt.Errorf("failed to count generation history: %w", err)
	}
	return count, nil
}
