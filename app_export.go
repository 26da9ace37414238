package main

import (
	"os"
	"path/filepath"

	"github.com/ZehnMilliarden/python-pptx/database"
	"github.com/ZehnMilliarden/python-pptx/export"
	"github.com/ZehnMilliarden/python-pptx/i18n"
)

// 固定的产物文件名
const (
	presentationFilename = "sample_presentation.pptx"
	workbookFilename     = "sample_data.xlsx"
	documentFilename     = "sample_report.docx"
	reportFilename       = "sample_report.pdf"
)

// GeneratedFile describes one artifact written during a run
type GeneratedFile struct {
	Kind     string `json:"kind"`
	Path     string `json:"path"`
	ByteSize int64  `json:"byteSize"`
}

// GenerateSamplePresentation builds the slide deck and writes it out
func (a *App) GenerateSamplePresentation(content export.SampleDeckContent) (*GeneratedFile, error) {
	b, err := a.pptService.GenerateSampleDeck(content)
	if err != nil {
		return nil, WrapOperationError("generate presentation", err)
	}
	return a.writeArtifact(database.KindPresentation, presentationFilename, b)
}

// GenerateSampleWorkbook builds the companion workbook and writes it out
func (a *App) GenerateSampleWorkbook(content export.SampleDeckContent) (*GeneratedFile, error) {
	b, err := a.excelService.GenerateSampleWorkbook(content)
	if err != nil {
		return nil, WrapOperationError("generate workbook", err)
	}
	return a.writeArtifact(database.KindWorkbook, workbookFilename, b)
}

// GenerateSampleDocument builds the companion document and writes it out
func (a *App) GenerateSampleDocument(content export.SampleDeckContent) (*GeneratedFile, error) {
	b, err := a.wordService.GenerateSampleDocument(content)
	if err != nil {
		return nil, WrapOperationError("generate document", err)
	}
	return a.writeArtifact(database.KindDocument, documentFilename, b)
}

// GenerateSampleReport builds the companion PDF report and writes it out
func (a *App) GenerateSampleReport(content export.SampleDeckContent) (*GeneratedFile, error) {
	b, err := a.pdfService.GenerateSampleReport(content)
	if err != nil {
		return nil, WrapOperationError("generate report", err)
	}
	return a.writeArtifact(database.KindReport, reportFilename, b)
}

// GenerateAll produces the presentation and, when enabled, the companion
// files. A presentation failure aborts the run; companion failures are
// logged and skipped.
func (a *App) GenerateAll(content export.SampleDeckContent) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, 4)

	deck, err := a.GenerateSamplePresentation(content)
	if err != nil {
		return nil, err
	}
	files = append(files, *deck)

	if !a.companions {
		return files, nil
	}

	type companion struct {
		kind     string
		generate func(export.SampleDeckContent) (*GeneratedFile, error)
	}
	companions := []companion{
		{database.KindWorkbook, a.GenerateSampleWorkbook},
		{database.KindDocument, a.GenerateSampleDocument},
		{database.KindReport, a.GenerateSampleReport},
	}
	for _, c := range companions {
		gf, err := c.generate(content)
		if err != nil {
			a.Log(i18n.T("export.companion_failed", c.kind, err))
			continue
		}
		files = append(files, *gf)
	}

	return files, nil
}

// writeArtifact writes bytes into the output directory and records history
func (a *App) writeArtifact(kind, filename string, data []byte) (*GeneratedFile, error) {
	path := filepath.Join(a.outputDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, WrapOperationErrorf("write %s", err, filename)
	}

	gf := &GeneratedFile{Kind: kind, Path: path, ByteSize: int64(len(data))}
	if a.detailedLog {
		a.Logf("[EXPORT] %s written (%d bytes)", path, gf.ByteSize)
	}

	// 历史记录失败不影响导出结果
	if _, err := a.historyService.Record(kind, path, gf.ByteSize); err != nil {
		a.Log(i18n.T("history.record_failed", err))
	}

	return gf, nil
}
