package osfile

import (
	"context"
	"errors"
	"io"
	"testing"

	"gotest.tools/assert"
	"gotest.tools/assert/cmp"
)

func tell(t *testing.T, f *File) int64 {
	t.Helper()
	pos, err := f.Tell()
	assert.NilError(t, err)
	return pos
}

func TestSeek(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			f := b.open(t, []byte(testContent))
			assert.Check(t, cmp.Equal(tell(t, f), int64(0)))

			assert.NilError(t, f.SeekFromBegin(0))
			assert.Check(t, cmp.Equal(tell(t, f), int64(0)))
			assert.NilError(t, f.SeekFromCurrent(0))
			assert.Check(t, cmp.Equal(tell(t, f), int64(0)))

			buf := make([]byte, 100)
			_, err := f.Read(buf)
			assert.NilError(t, err)
			assert.Check(t, cmp.Equal(tell(t, f), int64(15)))

			assert.NilError(t, f.SeekFromBegin(0))
			assert.Check(t, cmp.Equal(tell(t, f), int64(0)))

			assert.NilError(t, f.SeekFromEnd(-1))
			assert.Check(t, cmp.Equal(tell(t, f), int64(14)))
			n, err := f.Read(buf)
			assert.NilError(t, err)
			assert.Check(t, cmp.Equal(string(buf[:n]), "3"))
		})
	}
}

func TestSeekFromCurrent(t *testing.T) {
	f := backends()[0].open(t, []byte(testContent))

	assert.NilError(t, f.SeekFromCurrent(8))
	assert.NilError(t, f.SeekFromCurrent(-1))
	assert.Check(t, cmp.Equal(tell(t, f), int64(7)))

	pos, err := f.Seek(2, io.SeekCurrent)
	assert.NilError(t, err)
	assert.Check(t, cmp.Equal(pos, int64(9)))

	pos, err = f.SeekFrom(End, 0)
	assert.NilError(t, err)
	assert.Check(t, cmp.Equal(pos, int64(15)))

	eof, err := f.IsEOF()
	assert.NilError(t, err)
	assert.Check(t, eof)
}

func TestSeekFailures(t *testing.T) {
	f := backends()[0].open(t, []byte(testContent))
	assert.NilError(t, f.SeekFromBegin(5))

	t.Run("unknown origin", func(t *testing.T) {
		_, err := f.Seek(0, 7)
		assert.Check(t, errors.Is(err, ErrInvalidRange))
		assert.Check(t, cmp.Equal(tell(t, f), int64(5)))
	})


	t.Run("native failure", func(t *testing.T) {
		failure := errors.New("not seekable")
		ff, err := Open(context.Background(), "faulty", WithFS(faultyFS{err: failure}))
		assert.NilError(t, err)
		defer ff.Close()

		err = ff.SeekFromEnd(-1)
		assert.Check(t, errors.Is(err, ErrIO))
		assert.Check(t, errors.Is(err, failure))
		_, err = ff.Tell()
		assert.Check(t, errors.Is(err, ErrIO))
		_, err = ff.IsEOF()
		assert.Check(t, errors.Is(err, ErrIO))
	})
}

func TestSeekBeforeStart(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			f := b.open(t, []byte(testContent))
			assert.NilError(t, f.SeekFromBegin(5))

			assert.Check(t, errors.Is(f.SeekFromBegin(-1), ErrIO))
			assert.Check(t, cmp.Equal(tell(t, f), int64(5)))

			assert.Check(t, errors.Is(f.SeekFromEnd(-20), ErrIO))
			assert.Check(t, cmp.Equal(tell(t, f), int64(5)))

			assert.Check(t, errors.Is(f.SeekFromCurrent(-6), ErrIO))
			assert.Check(t, cmp.Equal(tell(t, f), int64(5)))

			buf := make([]byte, 4)
			n, err := f.ReadInto(buf, 0, 4)
			assert.NilError(t, err)
			assert.Check(t, cmp.Equal(string(buf[:n]), "ng 1"))
		})
	}
}

func TestOriginString(t *testing.T) {
	assert.Check(t, cmp.Equal(Begin.String(), "begin"))
	assert.Check(t, cmp.Equal(Current.String(), "current"))
	assert.Check(t, cmp.Equal(End.String(), "end"))
	assert.Check(t, cmp.Equal(Origin(9).String(), "Origin(9)"))
}

func TestFlush(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			f := b.open(t, []byte(testContent))
			assert.NilError(t, f.Flush())
			assert.Check(t, cmp.Equal(tell(t, f), int64(0)))
		})
	}

	t.Run("native failure", func(t *testing.T) {
		failure := errors.New("sync failed")
		f, err := Open(context.Background(), "faulty", WithFS(faultyFS{err: failure}))
		assert.NilError(t, err)
		defer f.Close()

		err = f.Flush()
		assert.Check(t, errors.Is(err, ErrIO))
		assert.Check(t, errors.Is(err, failure))
	})
}
