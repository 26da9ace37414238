package config

// Config structure
type Config struct {
	Language    string `json:"language"`    // UI language: "English" or "简体中文"
	OutputDir   string `json:"outputDir"`   // Where generated files land, empty means current directory
	Companions  bool   `json:"companions"`  // Also generate the xlsx/docx/pdf companions
	DetailedLog bool   `json:"detailedLog"` // Log per-slide progress
}
