package overrides

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Encode serializes groups as a single-line JSON array terminated by a
// newline. Rule keys are emitted in sorted order, which is also the order
// they were collected in.
func Encode(groups []*Group) ([]byte, error) {
	if groups == nil {
		groups = []*Group{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(groups); err != nil {
		return nil, fmt.Errorf("encode overrides: %w", err)
	}
	return buf.Bytes(), nil
}

// Write encodes groups and writes them to w in one call, so a failed encode
// leaves w untouched.
func Write(w io.Writer, groups []*Group) error {
	data, err := Encode(groups)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write overrides: %w", err)
	}
	return nil
}
