package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/shinji-kodama/humanizer/internal/model"
)

// Sink is the output file of a run. It is created empty by CreateSink and
// only ever appended to afterwards, one flushed line at a time.
type Sink struct {
	path  string
	file  *os.File
	w     *bufio.Writer
	lines int
}

// CreateSink replaces the file at path with a new, empty file opened for
// appending. Any previous content is discarded by deleting the old file
// first. Errors wrap model.ErrOutput and name the path.
func CreateSink(path string) (*Sink, error) {
	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		return nil, fmt.Errorf("%w: unable to remove %s: is a directory", model.ErrOutput, path)
	case err == nil:
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("%w: unable to remove %s: %w", model.ErrOutput, path, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: unable to inspect %s: %w", model.ErrOutput, path, err)
	}

	// O_EXCL guards against something recreating the file between the
	// remove and the open.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to open %s: %w", model.ErrOutput, path, err)
	}

	return &Sink{path: path, file: f, w: bufio.NewWriter(f)}, nil
}

// WriteLine writes line followed by a newline and flushes it to the file.
func (s *Sink) WriteLine(line string) error {
	if s.file == nil {
		return fmt.Errorf("%w: %s is closed", model.ErrOutput, s.path)
	}
	if _, err := s.w.WriteString(line); err != nil {
		return fmt.Errorf("%w: unable to append to %s: %w", model.ErrOutput, s.path, err)
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("%w: unable to append to %s: %w", model.ErrOutput, s.path, err)
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("%w: unable to flush %s: %w", model.ErrOutput, s.path, err)
	}
	s.lines++
	return nil
}

// Lines returns the number of lines written so far.
func (s *Sink) Lines() int {
	return s.lines
}

// Path returns the output file path.
func (s *Sink) Path() string {
	return s.path
}

// Close flushes any buffered data and closes the file. Calling Close more
// than once is a no-op.
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	f := s.file
	s.file = nil

	flushErr := s.w.Flush()
	closeErr := f.Close()
	if err := errors.Join(flushErr, closeErr); err != nil {
		return fmt.Errorf("%w: unable to close %s: %w", model.ErrOutput, s.path, err)
	}
	return nil
}
