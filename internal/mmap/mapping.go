package mmap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// ErrClosed is returned by every accessor once the view is closed.
var ErrClosed = errors.New("mmap: view is closed")

// View is a read-only view of a whole file. Point sets are decoded front to
// back exactly once, so the kernel is told to read ahead and drop pages
// behind the reader.
type View struct {
	data   []byte
	closed atomic.Bool
	unmap  func([]byte) error
}

// Open maps the file at path. Empty files produce an empty view and no
// mapping, since a zero-length mmap is an error on most systems.
func Open(path string) (*View, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if size == 0 {
		return &View{}, nil
	}
	if int64(int(size)) != size {
		return nil, fmt.Errorf("mmap: %s is too large to map (%d bytes)", path, size)
	}

	data, unmap, err := osMap(f, int(size))
	if err != nil {
		return nil, fmt.Errorf("mmap: map %s: %w", path, err)
	}
	if err := adviseSequential(data); err != nil {
		_ = unmap(data)
		return nil, fmt.Errorf("mmap: advise %s: %w", path, err)
	}
	return &View{data: data, unmap: unmap}, nil
}

// Len returns the file size. It stays valid after Close.
func (v *View) Len() int {
	return len(v.data)
}

// Bytes returns the mapped file. The slice must not be used after Close.
func (v *View) Bytes() ([]byte, error) {
	if v.closed.Load() {
		return nil, ErrClosed
	}
	return v.data, nil
}

// ReadAt copies from the view with io.ReaderAt semantics.
func (v *View) ReadAt(p []byte, off int64) (int, error) {
	if v.closed.Load() {
		return 0, ErrClosed
	}
	if off < 0 {
		return 0, fmt.Errorf("mmap: negative offset %d", off)
	}
	if off >= int64(len(v.data)) {
		return 0, io.EOF
	}
	n := copy(p, v.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Close releases the mapping. Later calls are no-ops.
func (v *View) Close() error {
	if v.closed.Swap(true) || v.unmap == nil {
		return nil
	}
	return v.unmap(v.data)
}
