// Package clipboard abstracts where cut and copied text goes: the
// system clipboard when available and enabled, or an in-process
// register otherwise.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/quelltext/ted/internal/logger"
)

// Clipboard stores and retrieves plain text.
type Clipboard interface {
	Get() (string, error)
	Set(text string) error
}

// Register is an in-process clipboard. It is the fallback when the
// system clipboard is disabled or unsupported on the platform.
type Register struct {
	text string
}

func (r *Register) Get() (string, error) { return r.text, nil }

func (r *Register) Set(text string) error {
	r.text = text
	return nil
}

// System reads and writes the operating system clipboard.
type System struct{}

func (System) Get() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading system clipboard: %w", err)
	}
	return text, nil
}

func (System) Set(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing system clipboard: %w", err)
	}
	return nil
}

// New returns the system clipboard when requested and supported,
// falling back to an internal register.
func New(system bool) Clipboard {
	if system {
		if clipboard.Unsupported {
			logger.Warnf("Clipboard: system clipboard unsupported on this platform, using internal register")
			return &Register{}
		}
		return System{}
	}
	return &Register{}
}
