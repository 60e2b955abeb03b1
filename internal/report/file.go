package report

import (
	"bytes"
	"fmt"

	"github.com/natefinch/atomic"
)

// WriteFile replaces path with data atomically, so readers never observe a
// partially written report.
func WriteFile(path string, data []byte) error {
	err := atomic.WriteFile(path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}
