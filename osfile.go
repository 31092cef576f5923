// Package osfile provides a read-only, handle-based wrapper around a native
// file layer.
//
// A File is obtained only through a successful Open and owns its native
// resource until Close. Every operation is synchronous and a File is meant
// to be used by one goroutine at a time; concurrent readers of the same path
// open their own Files, each with an independent cursor.
package osfile

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// BaseDir is the base directory for the relative paths passed to [Open].
var BaseDir string

// File is an open, read-only native file.
type File struct {
	native NativeFile
	path   string
	closed bool
	log    *zerolog.Logger
}

// Open opens path for reading. Any failure, including a path that names a
// directory, is reported as an *Error with CodeNotFound that wraps the
// native cause; no File is returned in that case.
func Open(ctx context.Context, path string, opts ...Opt) (*File, error) {
	o := options{fs: OSFileSystem{}}
	for _, opt := range opts {
		opt(&o)
	}
	if !filepath.IsAbs(path) && BaseDir != "" && path != "" {
		path = filepath.Join(BaseDir, path)
	}
	return open(ctx, o.fs, path)
}

func open(ctx context.Context, fsys FS, path string) (*File, error) {
	log := zerolog.Ctx(ctx)

	if path == "" {
		return nil, newError(CodeNotFound, "open", path, errors.New("empty path"))
	}
	if strings.IndexByte(path, 0) >= 0 {
		return nil, newError(CodeNotFound, "open", path, errors.New("path contains NUL byte"))
	}

	native, err := fsys.Open(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("open failed")
		return nil, newError(CodeNotFound, "open", path, err)
	}
	if native == nil {
		return nil, newError(CodeNotFound, "open", path, errors.New("native layer returned no file"))
	}

	info, err := native.Stat()
	if err == nil && info.IsDir() {
		err = errors.New("is a directory")
	}
	if err != nil {
		if cerr := native.Close(); cerr != nil {
			log.Debug().Err(cerr).Str("path", path).Msg("release after rejected open failed")
		}
		log.Debug().Err(err).Str("path", path).Msg("open rejected")
		return nil, newError(CodeNotFound, "open", path, err)
	}

	log.Debug().Str("path", path).Int64("size", info.Size()).Msg("opened")
	return &File{native: native, path: path, log: log}, nil
}

// With opens path, calls fn with the File and closes it on every exit path,
// including a panic in fn. The error from fn takes precedence over a close
// error.
func With(ctx context.Context, path string, fn func(f *File) error, opts ...Opt) (err error) {
	f, err := Open(ctx, path, opts...)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()
	return fn(f)
}

// Close releases the native resource. Only the first call releases; later
// calls return nil.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	err := f.native.Close()
	f.native = nil
	if err != nil {
		f.log.Warn().Err(err).Str("path", f.path).Msg("close failed")
		return newError(CodeIO, "close", f.path, err)
	}
	f.log.Debug().Str("path", f.path).Msg("closed")
	return nil
}

// Name returns the path the File was opened with.
func (f *File) Name() string {
	return f.path
}

// ModTime returns the modification time reported by the native layer.
func (f *File) ModTime() (time.Time, error) {
	if f.closed {
		return time.Time{}, newError(CodeClosed, "stat", f.path, nil)
	}
	info, err := f.native.Stat()
	if err != nil {
		return time.Time{}, f.ioError("stat", err)
	}
	return info.ModTime(), nil
}

func (f *File) ioError(op string, err error) error {
	f.log.Warn().Err(err).Str("path", f.path).Str("op", op).Msg("native file operation failed")
	return newError(CodeIO, op, f.path, err)
}
