package osfile

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

// FS is the native file layer a File is opened through.
type FS interface {
	Open(name string) (NativeFile, error)
}

// NativeFile is a read-only native resource. A NativeFile that also
// implements Sync() error backs File.Flush.
type NativeFile interface {
	io.Reader
	io.Seeker
	io.Closer
	Name() string
	Stat() (fs.FileInfo, error)
}

type syncer interface {
	Sync() error
}

// OSFileSystem implements FS using the os package
type OSFileSystem struct{}

func (OSFileSystem) Open(name string) (NativeFile, error) {
	f, err := os.Open(name)
	if err != nil {
		// Keep the returned interface nil rather than a typed nil *os.File.
		return nil, err
	}
	return f, nil
}

// BillyFS implements FS on top of a go-billy filesystem.
type BillyFS struct {
	fs billy.Filesystem
}

// NewBillyFS wraps an existing go-billy filesystem.
func NewBillyFS(fsys billy.Filesystem) *BillyFS {
	return &BillyFS{fs: fsys}
}

// NewOSFS returns a go-billy backed FS rooted at dir.
func NewOSFS(dir string) *BillyFS {
	return &BillyFS{fs: osfs.New(dir)}
}

// NewMemFS returns an empty in-memory FS.
func NewMemFS() *BillyFS {
	return &BillyFS{fs: memfs.New()}
}

// Raw returns the underlying go-billy filesystem.
//
//nolint:ireturn // exposes the adapter target.
func (b *BillyFS) Raw() billy.Filesystem {
	return b.fs
}

func (b *BillyFS) Open(name string) (NativeFile, error) {
	f, err := b.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("billy: open %q: %w", name, err)
	}
	return &billyFile{file: f, fs: b.fs}, nil
}

// billyFile adds Stat and Sync to a billy.File.
type billyFile struct {
	file billy.File
	fs   billy.Filesystem
}

func (f *billyFile) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Seek rejects a resulting position before the start of the file, as the
// os backend does; memfs would otherwise accept it.
func (f *billyFile) Seek(offset int64, whence int) (int64, error) {
	prev, err := f.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return prev, fmt.Errorf("billy: seek %q off=%d whence=%d: %w", f.file.Name(), offset, whence, err)
	}
	pos, err := f.file.Seek(offset, whence)
	if err != nil {
		return pos, fmt.Errorf("billy: seek %q off=%d whence=%d: %w", f.file.Name(), offset, whence, err)
	}
	if pos < 0 {
		if _, rerr := f.file.Seek(prev, io.SeekStart); rerr != nil {
			return prev, fmt.Errorf("billy: seek %q restore off=%d: %w", f.file.Name(), prev, rerr)
		}
		return prev, fmt.Errorf("billy: seek %q off=%d whence=%d: negative position: %w", f.file.Name(), offset, whence, fs.ErrInvalid)
	}
	return pos, nil
}

func (f *billyFile) Close() error {
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("billy: close %q: %w", f.file.Name(), err)
	}
	return nil
}

func (f *billyFile) Name() string {
	return f.file.Name()
}

func (f *billyFile) Stat() (fs.FileInfo, error) {
	info, err := f.fs.Stat(f.file.Name())
	if err != nil {
		return nil, fmt.Errorf("billy: stat %q: %w", f.file.Name(), err)
	}
	return info, nil
}

// Sync forwards to the wrapped file when it exposes Sync; otherwise there
// is nothing to persist.
func (f *billyFile) Sync() error {
	s, ok := f.file.(syncer)
	if !ok {
		return nil
	}
	if err := s.Sync(); err != nil {
		return fmt.Errorf("billy: sync %q: %w", f.file.Name(), err)
	}
	return nil
}
