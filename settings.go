package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ccos89/relia/internal/config"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/editor"
)

// ensureSettingsFile writes the default settings to path unless a file is
// already there.
func ensureSettingsFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return reliaError{err, "Could not stat path."}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil { //nolint:mnd
		return reliaError{err, "Could not create the settings directory."}
	}
	f, err := os.Create(path)
	if err != nil {
		return reliaError{err, "Could not create the settings file."}
	}
	if err := config.WriteSettingsTemplate(f); err != nil {
		_ = f.Close()
		return reliaError{err, "Could not render template."}
	}
	if err := f.Close(); err != nil {
		return reliaError{err, "Could not write the settings file."}
	}
	log.Debug("wrote default settings", "path", path)
	return nil
}

func editSettings(path string) error {
	if err := ensureSettingsFile(path); err != nil {
		return err
	}
	c, err := editor.Cmd("relia", path)
	if err != nil {
		return reliaError{err, "Could not edit your settings file."}
	}
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return reliaError{err, fmt.Sprintf(
			"Missing %s.",
			stderrStyles().InlineCode.Render("$EDITOR"),
		)}
	}

	fmt.Fprintln(os.Stderr, "Wrote config file to:", path)
	return nil
}

// backupSettings moves the file at path to path.bak and returns the backup
// location.
func backupSettings(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", reliaError{err, "Couldn't read config file."}
	}
	defer in.Close() //nolint:errcheck

	bak := path + ".bak"
	out, err := os.Create(bak)
	if err != nil {
		return "", reliaError{err, "Couldn't create backup file."}
	}
	defer out.Close() //nolint:errcheck

	if _, err := io.Copy(out, in); err != nil {
		return "", reliaError{err, "Couldn't write backup file."}
	}
	if err := os.Remove(path); err != nil {
		return "", reliaError{err, "Couldn't remove config file."}
	}
	return bak, nil
}

func resetSettings(path string) error {
	bak, err := backupSettings(path)
	if err != nil {
		return err
	}
	if err := ensureSettingsFile(path); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "\n  Your settings have been backed up to:", stderrStyles().InlineCode.Render(bak))
	fmt.Fprintln(os.Stderr, "  and reset to the defaults in:", stderrStyles().InlineCode.Render(path))
	fmt.Fprintln(os.Stderr)
	return nil
}
