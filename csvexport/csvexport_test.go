// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package csvexport

import (
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/survey-portal/models"
)

func TestRenderEmpty(t *testing.T) {
	data, err := Render(nil, time.UTC)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("Expected ErrEmpty, got %v", err)
	}
	if data != nil {
		t.Errorf("Expected no document, got %q", data)
	}
}

func TestRenderTwoRows(t *testing.T) {
	rs := []models.Response{
		{ID: "a", Name: "Ada", Age: 34, CreatedAt: time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)},
		{ID: "b", Name: "Grace", Age: 85, CreatedAt: time.Date(2025, 11, 20, 9, 30, 0, 0, time.UTC)},
	}

	data, err := Render(rs, time.UTC)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), data)
	}
	if lines[0] != "Name,Age,Timestamp" {
		t.Errorf("Expected header Name,Age,Timestamp, got %q", lines[0])
	}

	// Timestamps contain a comma and must be quoted
	if lines[1] != `Ada,34,"1/2/2025, 3:04:05 PM"` {
		t.Errorf("Unexpected first row %q", lines[1])
	}
	if lines[2] != `Grace,85,"11/20/2025, 9:30:00 AM"` {
		t.Errorf("Unexpected second row %q", lines[2])
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if len(records) != 3 || len(records[1]) != 3 {
		t.Errorf("Expected 3 records of 3 fields, got %v", records)
	}
}

func TestRenderQuotesNames(t *testing.T) {
	rs := []models.Response{
		{Name: `Lovelace, "Ada"`, Age: 36, CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	data, err := Render(rs, time.UTC)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if records[1][0] != `Lovelace, "Ada"` {
		t.Errorf("Expected name to round-trip, got %q", records[1][0])
	}
}

func TestFormatTimestampUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	ts := time.Date(2025, 7, 4, 2, 0, 0, 0, time.UTC)

	if got := FormatTimestamp(ts, loc); got != "7/3/2025, 9:00:00 PM" {
		t.Errorf("FormatTimestamp() = %q", got)
	}
}

func TestFileName(t *testing.T) {
	now := time.Date(2026, 10, 19, 23, 30, 0, 0, time.FixedZone("UTC-2", -2*60*60))

	if got := FileName(now); got != "survey-responses-2026-10-20.csv" {
		t.Errorf("FileName() = %q", got)
	}
}
