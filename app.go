package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ZehnMilliarden/python-pptx/config"
	"github.com/ZehnMilliarden/python-pptx/export"
	"github.com/ZehnMilliarden/python-pptx/i18n"
	"github.com/ZehnMilliarden/python-pptx/logger"
)

// App struct
type App struct {
	ctx            context.Context
	registry       *ServiceRegistry
	configService  *ConfigService
	historyService *HistoryFacadeService

	pptService   *export.PPTService
	excelService *export.ExcelService
	wordService  *export.WordService
	pdfService   *export.PDFService

	storageDir  string
	outputDir   string
	companions  bool
	detailedLog bool
	logger      *logger.Logger
}

// NewApp creates a new App application struct
func NewApp() *App {
	l := logger.NewLogger()
	return &App{
		configService: NewConfigService(l.Log),
		pptService:    export.NewPPTService(),
		excelService:  export.NewExcelService(),
		wordService:   export.NewWordService(),
		pdfService:    export.NewPDFService(),
		logger:        l,
	}
}

// startup wires services together. It must run before any generation.
func (a *App) startup(ctx context.Context) error {
	a.ctx = ctx

	// 日志最先初始化，后续启动消息才有落点
	storageDir, err := a.configService.GetStorageDir()
	if err != nil {
		return WrapOperationError("resolve storage dir", err)
	}
	if err := os.MkdirAll(storageDir, 0755); err != nil {
		return WrapOperationError("create storage dir", err)
	}
	a.storageDir = storageDir
	if err := a.logger.Init(storageDir); err != nil {
		return WrapOperationError("initialize logger", err)
	}

	// Create ServiceRegistry for lifecycle management
	a.registry = NewServiceRegistry(ctx, a.Log)
	a.Log("[STARTUP] ServiceRegistry created")

	a.historyService = NewHistoryFacadeService(storageDir, a.Log)
	if err := a.registry.RegisterCritical(a.configService); err != nil {
		return err
	}
	if err := a.registry.Register(a.historyService); err != nil {
		return err
	}
	if err := a.registry.InitializeAll(); err != nil {
		return err
	}

	// Load config, fall back to defaults when unreadable
	cfg, err := a.configService.GetEffectiveConfig()
	if err != nil {
		fmt.Println(i18n.T("config.load_failed", err))
		a.Log(fmt.Sprintf("[STARTUP] Config load failed, using defaults: %v", err))
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return WrapOperationError("resolve working dir", wdErr)
		}
		cfg = config.Config{Language: "简体中文", OutputDir: wd, Companions: true}
	}

	// Initialize i18n with language from config
	i18n.SyncLanguageFromConfig(&cfg)
	a.Log(fmt.Sprintf("[STARTUP] i18n initialized with language: %s", i18n.GetLanguageString()))

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return WrapOperationError("create output dir", err)
	}
	a.outputDir = cfg.OutputDir
	a.companions = cfg.Companions
	a.detailedLog = cfg.DetailedLog
	a.Log(fmt.Sprintf("[STARTUP] Output directory: %s", a.outputDir))

	return nil
}

// shutdown releases all registered services in reverse registration order.
func (a *App) shutdown() {
	if a.registry != nil {
		a.registry.ShutdownAll()
	}
	// Close logger last - other services may need to log during shutdown
	a.logger.Close()
}

// OutputDir returns the resolved output directory, valid after startup
func (a *App) OutputDir() string {
	return a.outputDir
}

// LogPath returns the active log file path, empty before startup
func (a *App) LogPath() string {
	return a.logger.Path()
}

// Log writes a log entry
func (a *App) Log(message string) {
	a.logger.Log(message)
}

// Logf writes a formatted log entry
func (a *App) Logf(format string, args ...interface{}) {
	a.logger.Logf(format, args...)
}
