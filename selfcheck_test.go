package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunSelfCheckOK(t *testing.T) {
	t.Setenv("LANDING_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	var out bytes.Buffer
	if err := runSelfCheck(&out); err != nil {
		t.Fatalf("runSelfCheck: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "selfcheck_status_err=false") {
		t.Fatalf("output missing success status flag:\n%s", got)
	}
	if !strings.Contains(got, "gates=3") {
		t.Fatalf("output missing gate count:\n%s", got)
	}
}
