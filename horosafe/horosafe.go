// Package horosafe provides bounded I/O helpers for reading untrusted files.
package horosafe

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrTooLarge is returned when input exceeds the caller's byte limit.
var ErrTooLarge = errors.New("horosafe: input exceeds size limit")

// LimitedReadAll reads at most maxBytes from r. Returns ErrTooLarge if the
// limit is exceeded.
func LimitedReadAll(r io.Reader, maxBytes int64) ([]byte, error) {
	lr := io.LimitReader(r, maxBytes+1)
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, maxBytes)
	}
	return data, nil
}

// ReadFile reads the file at path, failing with ErrTooLarge instead of
// loading more than maxBytes. The file may have grown since it was stat'ed.
func ReadFile(path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LimitedReadAll(f, maxBytes)
}
