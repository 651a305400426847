package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-dashboard-api/pkg/storage"
)

func TestExportArchiverPersistsReport(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	archiver := NewExportArchiver(store, 0, nil)
	archiver.Start(context.Background())
	defer archiver.Stop()

	archiver.Archive(&ExportedReport{
		Filename:    "attendance-report-test.csv",
		ContentType: "text/csv",
		Content:     []byte("Date,Status\n2025-03-10,present\n"),
	})

	path := filepath.Join(dir, "attendance-report-test.csv")
	assert.Eventually(t, func() bool {
		content, err := os.ReadFile(path)
		return err == nil && len(content) > 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestExportArchiverNilSafe(t *testing.T) {
	var archiver *ExportArchiver
	archiver.Start(context.Background())
	archiver.Archive(&ExportedReport{Filename: "x"})
	archiver.Stop()
}
