package utils

import (
	"testing"
	"time"
)

func TestFormatDateBR(t *testing.T) {
	d := time.Date(2026, time.September, 5, 14, 30, 0, 0, time.UTC)
	if got := FormatDateBR(d); got != "05/09/2026" {
		t.Errorf("FormatDateBR = %s, want 05/09/2026", got)
	}
}

func TestParseDateOnly(t *testing.T) {
	d, err := ParseDateOnly("2026-09-05")
	if err != nil {
		t.Fatalf("ParseDateOnly failed: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.September || d.Day() != 5 {
		t.Errorf("unexpected date: %v", d)
	}

	if _, err := ParseDateOnly("05/09/2026"); err == nil {
		t.Error("expected error for dd/mm/yyyy input")
	}
}

func TestBeginningOfDay(t *testing.T) {
	d := time.Date(2026, time.September, 5, 23, 59, 59, 0, time.Local)
	got := BeginningOfDay(d)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}
	if got.Day() != 5 {
		t.Errorf("expected same day, got %v", got)
	}
}
