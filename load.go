package main

import (
	"os"
	"strings"
)

// loadMsg returns msg, or the content of the file it points to when it is a
// file:// path.
func loadMsg(msg string) (string, error) {
	if path, ok := strings.CutPrefix(msg, "file://"); ok {
		bts, err := os.ReadFile(path)
		if err != nil {
			return "", err //nolint:wrapcheck
		}
		return string(bts), nil
	}

	return msg, nil
}
