package sarif

import (
	"path/filepath"
	"strings"
	"testing"
)

const wantVersion = "2.1.0"

// minimalSARIF is the smallest valid SARIF document.
const minimalSARIF = `{"version":"` + wantVersion + `","runs":[{"tool":{"driver":{"name":"ESLint"}},"results":[]}]}`

func TestRead_ValidDocument(t *testing.T) {
	doc, err := Read(strings.NewReader(minimalSARIF))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Version != wantVersion {
		t.Errorf("expected version %s, got %s", wantVersion, doc.Version)
	}
	if got := doc.Runs[0].Tool.Driver.Name; got != "ESLint" {
		t.Errorf("expected driver ESLint, got %s", got)
	}
}

func TestRead_ValidWithTrailingWhitespace(t *testing.T) {
	if _, err := Read(strings.NewReader(minimalSARIF + "   \n\t\n  ")); err != nil {
		t.Fatalf("trailing whitespace should be accepted, got error: %v", err)
	}
}

func TestReadBytes_TrailingGarbage(t *testing.T) {
	for _, tail := range []string{`garbage`, `{"extra":"object"}`} {
		_, err := ReadBytes([]byte(minimalSARIF + tail))
		if err == nil {
			t.Fatalf("expected error for trailing %q, got nil", tail)
		}
		if !strings.Contains(err.Error(), "trailing data") {
			t.Errorf("expected trailing data error, got: %v", err)
		}
	}
}

func TestReadBytes_InvalidJSON(t *testing.T) {
	if _, err := ReadBytes([]byte(`not json`)); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestReadBytes_MissingVersion(t *testing.T) {
	if _, err := ReadBytes([]byte(`{"runs":[]}`)); err == nil {
		t.Fatal("expected error for missing version, got nil")
	}
}

func TestResult_URI(t *testing.T) {
	r := Result{Locations: []Location{{PhysicalLocation: PhysicalLocation{ArtifactLocation: ArtifactLocation{URI: "src/a.js"}}}}}
	if got := r.URI(); got != "src/a.js" {
		t.Errorf("expected src/a.js, got %q", got)
	}
	if got := (Result{}).URI(); got != "" {
		t.Errorf("expected empty URI, got %q", got)
	}
}

func TestFilePath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"src/a.js", "src/a.js"},
		{"file:///proj/src/a.js", filepath.FromSlash("/proj/src/a.js")},
		{"file:///proj/my%20file.js", filepath.FromSlash("/proj/my file.js")},
	}
	for _, tt := range tests {
		if got := FilePath(tt.uri); got != tt.want {
			t.Errorf("FilePath(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}
