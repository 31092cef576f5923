package osfile

import (
	"errors"
	"fmt"
	"io"
)

// ReadInto reads up to amount bytes into buf[offset:offset+amount] and
// advances the cursor by the number of bytes transferred.
//
// A window that does not fit in buf is rejected with 0 and an error
// matching ErrInvalidRange before the native file is touched. Reaching the
// end of the file is not an error: it shows up only as a count smaller than
// amount.
func (f *File) ReadInto(buf []byte, offset, amount int) (int, error) {
	if offset < 0 || amount < 0 || offset > len(buf) || amount > len(buf)-offset {
		return 0, newError(CodeInvalidRange, "read", f.path,
			fmt.Errorf("window [%d:+%d] exceeds buffer of %d bytes", offset, amount, len(buf)))
	}
	if f.closed {
		return 0, newError(CodeClosed, "read", f.path, nil)
	}

	n, err := io.ReadFull(f.native, buf[offset:offset+amount])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = nil
	}
	if err != nil {
		return n, f.ioError("read", err)
	}
	return n, nil
}

// Read fills p from the current cursor. It implements io.Reader: a short
// count means the end of the file was reached, and (0, io.EOF) is returned
// once nothing is left. Unlike ReadInto(p, 0, len(p)), which reports an
// exhausted file only as a zero count with a nil error, Read surfaces
// io.EOF; callers that want the count-only form use ReadInto.
func (f *File) Read(p []byte) (int, error) {
	n, err := f.ReadInto(p, 0, len(p))
	if err != nil {
		return n, err
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// ReadAll reads Size bytes from the current cursor in a single ReadInto.
// On a freshly opened File that is the whole content.
func (f *File) ReadAll() ([]byte, error) {
	size, err := f.Size()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	n, err := f.ReadInto(buf, 0, len(buf))
	if err != nil {
		return nil, err
	}
	if int64(n) != size {
		f.log.Debug().Str("path", f.path).Int64("size", size).Int("read", n).Msg("short read_all")
	}
	return buf[:n], nil
}

// Size returns the length of the file in bytes. The cursor is not moved.
func (f *File) Size() (int64, error) {
	if f.closed {
		return 0, newError(CodeClosed, "size", f.path, nil)
	}
	info, err := f.native.Stat()
	if err != nil {
		return 0, f.ioError("size", err)
	}
	return info.Size(), nil
}

// IsEOF reports whether the cursor is at or past the end of the file.
func (f *File) IsEOF() (bool, error) {
	pos, err := f.Tell()
	if err != nil {
		return false, err
	}
	size, err := f.Size()
	if err != nil {
		return false, err
	}
	return pos >= size, nil
}
