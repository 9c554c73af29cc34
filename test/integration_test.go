// ABOUTME: Integration tests for oura CLI.
// ABOUTME: Builds the binary and runs it against a local fake of the Oura API.
package test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	ouraBinary := filepath.Join(t.TempDir(), "oura")

	buildCmd := exec.Command("go", "build", "-o", ouraBinary, "./cmd/oura")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer integration" {
			http.Error(w, `{"detail":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		switch strings.TrimPrefix(r.URL.Path, "/v2/usercollection/") {
		case "daily_sleep":
			_, _ = w.Write([]byte(`{"data":[{"day":"2024-02-10","score":82}]}`))
		case "daily_readiness":
			_, _ = w.Write([]byte(`{"data":[{"day":"2024-02-10","score":91,"contributors":{"hrv_balance":78}}]}`))
		default:
			_, _ = w.Write([]byte(`{"data":[]}`))
		}
	}))
	defer api.Close()

	workDir := t.TempDir()
	run := func(token string, args ...string) (string, error) {
		cmd := exec.Command(ouraBinary, args...)
		cmd.Dir = workDir
		cmd.Env = append(os.Environ(),
			"OURA_TOKEN="+token,
			"OURA_API_URL="+api.URL,
			"NO_COLOR=1",
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Scores for a fixed day
	output, err := run("integration", "scores", "2024-02-10")
	if err != nil {
		t.Fatalf("Failed to get scores: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Sleep 82  Readiness 91  Activity --") {
		t.Errorf("Expected scores line, got: %s", output)
	}
	if !strings.Contains(output, "HRV Balance") {
		t.Errorf("Expected readiness contributors, got: %s", output)
	}

	// Raw passthrough
	output, err = run("integration", "json", "daily_sleep", "2024-02-10")
	if err != nil {
		t.Fatalf("Failed to get raw json: %v\n%s", err, output)
	}
	if !strings.Contains(output, `"score": 82`) {
		t.Errorf("Expected raw JSON, got: %s", output)
	}

	// Empty trend makes no requests and still renders
	output, err = run("integration", "trend", "-d", "0")
	if err != nil {
		t.Fatalf("Failed to get trend: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Average") {
		t.Errorf("Expected average row, got: %s", output)
	}

	// Upstream errors exit non-zero with status and body
	output, err = run("wrong", "readiness", "2024-02-10")
	if err == nil {
		t.Fatal("Expected failure with bad token")
	}
	if !strings.Contains(output, "401") || !strings.Contains(output, "unauthorized") {
		t.Errorf("Expected status and body in error, got: %s", output)
	}

	// Missing token points at the token page
	output, err = run("", "readiness")
	if err == nil {
		t.Fatal("Expected failure without token")
	}
	if !strings.Contains(output, "personal-access-tokens") {
		t.Errorf("Expected token guidance, got: %s", output)
	}

	// Invalid date
	output, err = run("integration", "sleep", "10-02-2024")
	if err == nil {
		t.Fatal("Expected failure for invalid date")
	}
	if !strings.Contains(output, "invalid date") {
		t.Errorf("Expected invalid date error, got: %s", output)
	}
}
