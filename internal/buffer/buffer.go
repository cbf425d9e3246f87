// internal/buffer/buffer.go
package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/quelltext/ted/internal/logger"
)

// Buffer holds an ordered sequence of UTF-8 text lines with no stored
// line terminators. It always has at least one line; an empty buffer
// is a single empty line. A file that ends with a trailing newline is
// represented by an extra trailing empty line, and a file with a final
// unterminated line has no such sentinel; Save reproduces the original
// bytes exactly.
type Buffer struct {
	lines    []string
	indent   Indent
	filePath string
	modified bool
}

// New creates an empty buffer with a single empty line.
func New() *Buffer {
	return &Buffer{
		lines:  []string{""},
		indent: DefaultIndent(),
	}
}

// Load reads a byte stream into a new buffer, splitting on line feeds
// and stripping one trailing carriage return per line. The indent mode
// is detected from the first indented line; tabWidth is the configured
// display width used for tab-mode indents.
func Load(r io.Reader, tabWidth int) (*Buffer, error) {
	br := bufio.NewReader(r)

	var lines []string
	indent := DefaultIndent()
	if tabWidth > 0 {
		indent.Width = tabWidth
	}
	detected := false
	endsInNewline := false

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			endsInNewline = strings.HasSuffix(line, "\n")
			if endsInNewline {
				line = strings.TrimSuffix(line, "\n")
				line = strings.TrimSuffix(line, "\r")
			}
			if !detected {
				if in, ok := detectIndent(line, indent.DisplayWidth()); ok {
					indent = in
					detected = true
				}
			}
			lines = append(lines, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error reading stream: %w", err)
		}
	}

	// A stream whose last line was newline-terminated gets a trailing
	// empty sentinel line so the round trip on save is exact.
	if endsInNewline {
		lines = append(lines, "")
	}
	if len(lines) == 0 {
		lines = []string{""}
	}

	return &Buffer{lines: lines, indent: indent}, nil
}

// LoadFile reads a file into a new buffer. A missing file yields an
// empty buffer bound to that path, like opening a new file.
func LoadFile(path string, tabWidth int) (*Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			b := New()
			b.filePath = path
			return b, nil
		}
		return nil, fmt.Errorf("failed to open file '%s': %w", path, err)
	}
	defer file.Close()

	b, err := Load(file, tabWidth)
	if err != nil {
		return nil, fmt.Errorf("error reading file '%s': %w", path, err)
	}
	b.filePath = path
	logger.Debugf("Buffer: loaded %d lines from %s", len(b.lines), path)
	return b, nil
}

// WriteTo writes the buffer content in the load format: every line
// except the last is followed by a line feed; the last line gets a
// trailing line feed only if it is non-empty, because an empty last
// line encodes "file ends with a newline".
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64

	for i, line := range b.lines {
		n, err := bw.WriteString(line)
		written += int64(n)
		if err != nil {
			return written, err
		}
		if i < len(b.lines)-1 || line != "" {
			if err := bw.WriteByte('\n'); err != nil {
				return written, err
			}
			written++
		}
	}
	return written, bw.Flush()
}

// Save writes the buffer to its stored path, or to filePath when
// non-empty, and clears the modified flag on success. A failed save
// leaves the in-memory state untouched.
func (b *Buffer) Save(filePath string) error {
	path := b.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file '%s': %w", path, err)
	}
	if _, err := b.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file '%s': %w", path, err)
	}

	b.filePath = path
	b.modified = false
	logger.Debugf("Buffer: saved %d lines to %s", len(b.lines), path)
	return nil
}

// Lines returns the underlying line slice. Callers must not mutate it;
// all content mutation goes through the row primitives below.
func (b *Buffer) Lines() []string {
	return b.lines
}

// LineCount returns the number of lines; always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the content of row i, or the empty string for an index
// out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// SetLine replaces the content of row i and marks the buffer modified.
func (b *Buffer) SetLine(i int, s string) {
	if i < 0 || i >= len(b.lines) {
		return
	}
	b.lines[i] = s
	b.modified = true
}

// InsertLine inserts s as a new row at index i, shifting later rows
// down.
func (b *Buffer) InsertLine(i int, s string) {
	if i < 0 || i > len(b.lines) {
		return
	}
	b.lines = append(b.lines, "")
	copy(b.lines[i+1:], b.lines[i:])
	b.lines[i] = s
	b.modified = true
}

// RemoveLine deletes row i, shifting later rows up. The last remaining
// line is never removed; it is cleared instead.
func (b *Buffer) RemoveLine(i int) {
	if i < 0 || i >= len(b.lines) {
		return
	}
	if len(b.lines) == 1 {
		b.lines[0] = ""
		b.modified = true
		return
	}
	b.lines = append(b.lines[:i], b.lines[i+1:]...)
	b.modified = true
}

// SwapLines exchanges rows i and j.
func (b *Buffer) SwapLines(i, j int) {
	if i < 0 || j < 0 || i >= len(b.lines) || j >= len(b.lines) {
		return
	}
	b.lines[i], b.lines[j] = b.lines[j], b.lines[i]
	b.modified = true
}

// Indent returns the buffer's indent mode.
func (b *Buffer) Indent() Indent {
	return b.indent
}

// SetIndent overrides the detected indent mode.
func (b *Buffer) SetIndent(in Indent) {
	b.indent = in
}

// IsModified reports whether the buffer has unsaved changes.
func (b *Buffer) IsModified() bool {
	return b.modified
}

// FilePath returns the path the buffer was loaded from or saved to.
func (b *Buffer) FilePath() string {
	return b.filePath
}
