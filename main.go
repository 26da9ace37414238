package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ZehnMilliarden/python-pptx/database"
	"github.com/ZehnMilliarden/python-pptx/export"
	"github.com/ZehnMilliarden/python-pptx/i18n"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Create an instance of the app structure
	app := NewApp()

	fmt.Println(i18n.T("app.starting"))

	if err := app.startup(context.Background()); err != nil {
		return err
	}
	defer app.shutdown()

	fmt.Println(i18n.T("app.output_dir", app.OutputDir()))
	if logPath := app.LogPath(); logPath != "" {
		fmt.Println(i18n.T("app.log_file", logPath))
	}

	files, err := app.GenerateAll(export.DefaultSampleContent())
	if err != nil {
		return errors.New(i18n.T("export.presentation_failed", err))
	}

	savedKeys := map[string]string{
		database.KindPresentation: "export.presentation_saved",
		database.KindWorkbook:     "export.workbook_saved",
		database.KindDocument:     "export.document_saved",
		database.KindReport:       "export.report_saved",
	}
	for _, f := range files {
		if key, ok := savedKeys[f.Kind]; ok {
			fmt.Println(i18n.T(key, f.Path))
		}
	}

	if total, err := app.historyService.Total(); err == nil {
		fmt.Println(i18n.T("history.total", total))
	}

	fmt.Println(i18n.T("app.done"))
	return nil
}
