package osfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// LiveFile is a read-only, decoded view of a file that is reloaded
// whenever the file's modification time moves forward.
type LiveFile[StateT any] struct {
	path string

	lastModTime time.Time
	cached      StateT
	mutex       sync.Mutex

	defaultFunc func() StateT
	decode      func(data []byte, v *StateT) error
	errHandler  func(context.Context, error)
	onLoaded    func(context.Context, *StateT)
	openOpts    []Opt
}

// The default error handler used for all LiveFile instances created without an
// explicit [WithErrorHandler] option.
var DefaultErrorHandler = func(ctx context.Context, err error) {
	zerolog.Ctx(ctx).Error().Err(err).Msg("live file")
}

// NewLive creates a LiveFile for path. Nothing is read until the first
// Peek or View.
func NewLive[T any](path string, opts ...LiveOpt[T]) *LiveFile[T] {
	lf := &LiveFile[T]{
		path:       path,
		errHandler: DefaultErrorHandler,
		decode: func(data []byte, v *T) error {
			return json.Unmarshal(data, v)
		},
	}

	for _, opt := range opts {
		opt(lf)
	}
	if lf.defaultFunc == nil {
		lf.defaultFunc = func() T {
			var zero T
			return zero
		}
	}
	lf.cached = lf.defaultFunc()
	return lf
}

// Peek returns a copy of the current state.
func (lf *LiveFile[T]) Peek(ctx context.Context) T {
	lf.mutex.Lock()
	lf.ensure(ctx)
	c := lf.cached
	lf.mutex.Unlock()
	return c
}

// View calls f with the current state. The file is not reloaded while f
// runs.
func (lf *LiveFile[T]) View(ctx context.Context, f func(state *T)) {
	lf.mutex.Lock()
	defer lf.mutex.Unlock()

	lf.ensure(ctx)
	f(&lf.cached)
}

func (lf *LiveFile[T]) ensure(ctx context.Context) {
	err := With(ctx, lf.path, func(file *File) error {
		lf.loadIfUpdated(ctx, file)
		return nil
	}, lf.openOpts...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		lf.errHandler(ctx, err)
	}
}

func (lf *LiveFile[T]) loadIfUpdated(ctx context.Context, file *File) {
	modTime, err := file.ModTime()
	if err != nil {
		lf.errHandler(ctx, fmt.Errorf("stat failed: %w", err))
		return
	}
	size, err := file.Size()
	if err != nil {
		lf.errHandler(ctx, fmt.Errorf("stat failed: %w", err))
		return
	}

	if size == 0 {
		return
	}

	if modTime.After(lf.lastModTime) {
		lf.forceLoad(ctx, file)
		lf.lastModTime = modTime
	}
}

func (lf *LiveFile[T]) forceLoad(ctx context.Context, file *File) {
	if err := file.SeekFromBegin(0); err != nil {
		lf.errHandler(ctx, fmt.Errorf("failed to rewind file: %w", err))
		return
	}

	data, err := file.ReadAll()
	if err != nil {
		lf.errHandler(ctx, err)
		return
	}

	next := lf.defaultFunc()
	if len(data) > 0 {
		if err := lf.decode(data, &next); err != nil {
			lf.errHandler(ctx, fmt.Errorf("invalid content: %w", err))
			return
		}
	}
	lf.cached = next

	zerolog.Ctx(ctx).Debug().
		Str("path", file.Name()).
		Int("size", len(data)).
		Time("lastMod", lf.lastModTime).
		Msg("loaded")

	if lf.onLoaded != nil {
		lf.onLoaded(ctx, &lf.cached)
	}
}
