// Package detect sniffs stdin to determine the input format.
package detect

import (
	"bytes"
	"encoding/json"
)

// Format represents a recognized input format.
type Format int

const (
	Unknown    Format = iota
	ESLintJSON        // eslint -f json: a JSON array of file reports
	SARIF             // SARIF 2.1.0 JSON document
)

func (f Format) String() string {
	switch f {
	case ESLintJSON:
		return "eslint-json"
	case SARIF:
		return "sarif"
	default:
		return "unknown"
	}
}

// Sniff examines input to determine its format. An array is taken to be an
// ESLint report without further checks so that malformed reports surface as
// decode errors rather than as an unknown format.
func Sniff(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Unknown
	}

	switch data[0] {
	case '[':
		return ESLintJSON
	case '{':
		if isSARIF(data) {
			return SARIF
		}
	}
	return Unknown
}

func isSARIF(data []byte) bool {
	var probe struct {
		Version string            `json:"version"`
		Runs    []json.RawMessage `json:"runs"`
	}
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&probe); err != nil {
		return false
	}
	return probe.Version != "" && probe.Runs != nil
}
