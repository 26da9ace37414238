package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ZehnMilliarden/python-pptx/database"
)

// HistoryRecorder 定义生成历史记录接口
type HistoryRecorder interface {
	Record(kind, filename string, byteSize int64) (string, error)
	Recent(limit int) ([]database.GenerationRecord, error)
	Total() (int, error)
}

// HistoryFacadeService 生成历史门面，负责打开数据库并封装历史记录操作
type HistoryFacadeService struct {
	ctx     context.Context
	dataDir string
	db      *sql.DB
	history *database.HistoryService
	logger  func(string)
}

// NewHistoryFacadeService 创建新的 HistoryFacadeService 实例
func NewHistoryFacadeService(dataDir string, logger func(string)) *HistoryFacadeService {
	return &HistoryFacadeService{
		dataDir: dataDir,
		logger:  logger,
	}
}

// Name 返回服务名称
func (s *HistoryFacadeService) Name() string {
	return "history"
}

// Initialize 打开历史数据库并执行迁移
func (s *HistoryFacadeService) Initialize(ctx context.Context) error {
	s.ctx = ctx

	db, err := database.InitDB(s.dataDir)
	if err != nil {
		return WrapError("history", "Initialize", err)
	}
	s.db = db
	s.history = database.NewHistoryService(db)
	s.log("HistoryFacadeService initialized")
	return nil
}

// Shutdown 关闭历史数据库
func (s *HistoryFacadeService) Shutdown() error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return WrapError("history", "Shutdown", err)
		}
		s.db = nil
		s.history = nil
	}
	return nil
}

// log 记录日志
func (s *HistoryFacadeService) log(msg string) {
	if s.logger != nil {
		s.logger(msg)
	}
}

// Record 记录一次文件生成，返回记录 ID
func (s *HistoryFacadeService) Record(kind, filename string, byteSize int64) (string, error) {
	if s.history == nil {
		return "", WrapError("history", "Record", fmt.Errorf("history service not initialized"))
	}
	return s.history.Record(kind, filename, byteSize)
}

// Recent 返回最近的生成记录
func (s *HistoryFacadeService) Recent(limit int) ([]database.GenerationRecord, error) {
	if s.history == nil {
		return nil, WrapError("history", "Recent", fmt.Errorf("history service not initialized"))
	}
	return s.history.List(limit)
}

// Total 返回累计生成文件数
func (s *HistoryFacadeService) Total() (int, error) {
	if s.history == nil {
		return 0, WrapError("history", "Total", fmt.Errorf("history service not initialized"))
	}
	return s.history.Total()
}
