package main

import (
	"bytes"
	"context"
	"os"
	"testing"

	"pgregory.net/rapid"

	"github.com/ZehnMilliarden/python-pptx/config"
	"github.com/ZehnMilliarden/python-pptx/database"
)

// Feature: sample-app-architecture, Property 7: 产物写盘与历史账本一致
//
// For any artifact kind, filename and payload, writeArtifact() should write the
// exact payload into the output directory, report the payload length as the
// artifact size, and append exactly one record to the generation history.
//
// **Validates: Requirements 3.4, 6.2**

func TestProperty7_ArtifactWriteLedgerConsistency(t *testing.T) {
	app := NewApp()
	app.configService.SetStorageDir(t.TempDir())

	outDir := t.TempDir()
	err := app.configService.SaveConfig(config.Config{
		Language:   "简体中文",
		OutputDir:  outDir,
		Companions: true,
	})
	if err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	if err := app.startup(context.Background()); err != nil {
		t.Fatalf("startup failed: %v", err)
	}
	defer app.shutdown()

	kinds := []string{
		database.KindPresentation,
		database.KindWorkbook,
		database.KindDocument,
		database.KindReport,
	}

	rapid.Check(t, func(t *rapid.T) {
		kind := rapid.SampledFrom(kinds).Draw(t, "kind")
		filename := rapid.StringMatching(`[a-z]{3,12}\.bin`).Draw(t, "filename")
		payload := rapid.SliceOfN(rapid.Byte(), 1, 2048).Draw(t, "payload")

		before, err := app.historyService.Total()
		if err != nil {
			t.Fatalf("Total failed: %v", err)
		}

		gf, err := app.writeArtifact(kind, filename, payload)
		if err != nil {
			t.Fatalf("writeArtifact failed: %v", err)
		}

		// Reported size must be the payload length
		if gf.ByteSize != int64(len(payload)) {
			t.Fatalf("reported %d bytes for a %d byte payload", gf.ByteSize, len(payload))
		}
		if gf.Kind != kind {
			t.Fatalf("expected kind %s, got %s", kind, gf.Kind)
		}

		// The file on disk must hold exactly the payload
		onDisk, err := os.ReadFile(gf.Path)
		if err != nil {
			t.Fatalf("artifact missing on disk: %v", err)
		}
		if !bytes.Equal(onDisk, payload) {
			t.Fatalf("artifact on disk differs from the written payload")
		}

		// Exactly one new ledger entry per write
		after, err := app.historyService.Total()
		if err != nil {
			t.Fatalf("Total failed: %v", err)
		}
		if after != before+1 {
			t.Fatalf("expected history to grow from %d to %d, got %d", before, before+1, after)
		}
	})
}
