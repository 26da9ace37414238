package i18n

var englishTranslations = map[string]string{
	// Application lifecycle
	"app.starting":   "Starting the PPTX sample generator...",
	"app.output_dir": "Output directory: %s",
	"app.log_file":   "Log file: %s",
	"app.done":       "All sample files generated",

	// Export Operations
	"export.presentation_saved":  "Presentation saved to: %s",
	"export.workbook_saved":      "Sample workbook saved to: %s",
	"export.document_saved":      "Sample document saved to: %s",
	"export.report_saved":        "Sample report saved to: %s",
	"export.presentation_failed": "Presentation generation failed: %s",
	"export.companion_failed":    "Companion file %s generation failed: %s",

	// Generation History
	"history.record_failed": "Failed to record generation history: %s",
	"history.total":         "Total files generated to date: %d",

	// Configuration
	"config.load_failed": "Failed to load config, using defaults: %s",
}
