package app

import (
	"errors"
	"os"
)

// readFile reads the file at path; a missing file is not an error and
// yields nil.
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
