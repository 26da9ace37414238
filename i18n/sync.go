package i18n

import (
	"github.com/ZehnMilliarden/python-pptx/config"
)

// SyncLanguageFromConfig synchronizes language setting from application config
// This should be called when the application starts or when config changes
func SyncLanguageFromConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}

	var lang Language
	switch cfg.Language {
	case "English":
		lang = English
	case "简体中文":
		lang = Chinese
	default:
		// Default to Chinese if not set or invalid
		lang = Chinese
	}

	SetLanguage(lang)
}

// GetLanguageString returns the language as a plain string
func GetLanguageString() string {
	lang := GetLanguage()
	return string(lang)
}

// ParseLanguage converts a string to Language type
func ParseLanguage(langStr string) Language {
	switch langStr {
	case "English":
		return English
	case "简体中文":
		return Chinese
	default:
		return Chinese
	}
}
