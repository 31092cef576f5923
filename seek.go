package osfile

import (
	"fmt"
	"io"
)

// Origin is the reference point of a seek.
type Origin int

const (
	Begin   Origin = io.SeekStart
	Current Origin = io.SeekCurrent
	End     Origin = io.SeekEnd
)

func (o Origin) String() string {
	switch o {
	case Begin:
		return "begin"
	case Current:
		return "current"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Origin(%d)", int(o))
	}
}

// SeekFrom moves the cursor to offset relative to origin and returns the
// new absolute position.
func (f *File) SeekFrom(origin Origin, offset int64) (int64, error) {
	switch origin {
	case Begin, Current, End:
	default:
		return 0, newError(CodeInvalidRange, "seek", f.path, fmt.Errorf("unknown origin %v", origin))
	}
	if f.closed {
		return 0, newError(CodeClosed, "seek", f.path, nil)
	}
	pos, err := f.native.Seek(offset, int(origin))
	if err != nil {
		return 0, f.ioError("seek", err)
	}
	return pos, nil
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.SeekFrom(Origin(whence), offset)
}

// SeekFromBegin positions the cursor offset bytes after the start.
func (f *File) SeekFromBegin(offset int64) error {
	_, err := f.SeekFrom(Begin, offset)
	return err
}

// SeekFromCurrent moves the cursor offset bytes from where it is.
func (f *File) SeekFromCurrent(offset int64) error {
	_, err := f.SeekFrom(Current, offset)
	return err
}

// SeekFromEnd positions the cursor relative to the end; SeekFromEnd(-1)
// leaves exactly one byte to read.
func (f *File) SeekFromEnd(offset int64) error {
	_, err := f.SeekFrom(End, offset)
	return err
}

// Tell returns the current cursor position.
func (f *File) Tell() (int64, error) {
	return f.SeekFrom(Current, 0)
}

// Flush asks the native layer to persist buffered state. Files without a
// Sync method have nothing to flush.
func (f *File) Flush() error {
	if f.closed {
		return newError(CodeClosed, "flush", f.path, nil)
	}
	s, ok := f.native.(syncer)
	if !ok {
		return nil
	}
	if err := s.Sync(); err != nil {
		return f.ioError("flush", err)
	}
	return nil
}
