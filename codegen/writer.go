package codegen

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// WriteFileIfDifferent writes contents to f only when they differ from what f
// already holds, leaving the file untouched otherwise so that downstream
// build systems see a stable modification time. f must be open for both
// reading and writing.
func WriteFileIfDifferent(f *os.File, contents []byte) error {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("Cannot seek %v: %w", f.Name(), err)
	}
	current, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("Cannot read %v: %w", f.Name(), err)
	}
	if bytes.Equal(current, contents) {
		return nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("Cannot seek %v: %w", f.Name(), err)
	}
	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("Cannot truncate %v: %w", f.Name(), err)
	}
	if _, err := f.Write(contents); err != nil {
		return fmt.Errorf("Cannot write %v: %w", f.Name(), err)
	}
	return nil
}
