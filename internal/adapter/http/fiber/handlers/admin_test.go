package handlers

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/mocks"
)

func newExportApp(export *mocks.MockExportService) *fiber.App {
	app := fiber.New()
	h := NewAdminHandler(nil, export, zap.NewNop())
	app.Get("/export.zip", h.ExportZip)
	return app
}

func TestExportZip_OK(t *testing.T) {
	export := &mocks.MockExportService{
		WriteArchiveFunc: func(ctx context.Context, w io.Writer) error {
			zw := zip.NewWriter(w)
			entry, err := zw.Create("output.csv")
			if err != nil {
				return err
			}
			if _, err := entry.Write([]byte("initials,group\n")); err != nil {
				return err
			}
			return zw.Close()
		},
	}

	resp, err := newExportApp(export).Test(httptest.NewRequest("GET", "/export.zip", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); ct != "application/zip" {
		t.Errorf("content type = %q", ct)
	}
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(cd, "passlog-export_") {
		t.Errorf("content disposition = %q", cd)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatalf("body is not a readable zip: %v", err)
	}
	if len(zr.File) != 1 || zr.File[0].Name != "output.csv" {
		t.Errorf("unexpected archive contents: %+v", zr.File)
	}
}

func TestExportZip_MidWalkFailureYieldsCleanError(t *testing.T) {
	export := &mocks.MockExportService{
		WriteArchiveFunc: func(ctx context.Context, w io.Writer) error {
			// Bytes already written before the failure must never reach the
			// client glued onto the error payload.
			w.Write([]byte("PK\x03\x04partial"))
			return errors.New("walk failed")
		},
	}

	resp, err := newExportApp(export).Test(httptest.NewRequest("GET", "/export.zip", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); ct == "application/zip" {
		t.Error("failed export must not be served as a zip")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(body, []byte("PK\x03\x04")) {
		t.Error("partial zip bytes leaked into the error response")
	}
	var payload map[string]string
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("error response is not JSON: %q", body)
	}
	if payload["error"] == "" {
		t.Errorf("missing error message: %v", payload)
	}
}
