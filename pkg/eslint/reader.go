package eslint

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoInput is returned when there is no report to read: the input was
// empty or only whitespace.
var ErrNoInput = errors.New("no input")

// FormatError reports input that is not a well-formed ESLint JSON report.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return "decode eslint report: " + e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }

// ReadFile parses an ESLint JSON report from disk.
func ReadFile(path string) ([]FileReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open eslint report: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read consumes r to completion and parses it as an ESLint JSON report.
func Read(r io.Reader) ([]FileReport, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read eslint report: %w", err)
	}
	return ReadBytes(data)
}

// ReadBytes parses an ESLint JSON report from a byte slice. The document must
// be a single JSON array; anything after it other than whitespace is rejected.
func ReadBytes(data []byte) ([]FileReport, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoInput
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	var reports []FileReport
	if err := dec.Decode(&reports); err != nil {
		return nil, &FormatError{Err: err}
	}
	if reports == nil {
		return nil, &FormatError{Err: errors.New("expected an array of file reports, got null")}
	}
	if dec.More() {
		return nil, &FormatError{Err: errors.New("trailing data after report")}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &FormatError{Err: errors.New("trailing data after report")}
	}
	return reports, nil
}
