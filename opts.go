package osfile

import "context"

type options struct {
	fs FS
}

// Opt configures Open.
type Opt func(o *options)

// WithFS sets the native file layer to open through.
// If not set, OSFileSystem is used.
func WithFS(fsys FS) Opt {
	return func(o *options) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}

// LiveOpt configures a LiveFile.
type LiveOpt[T any] func(s *LiveFile[T])

// WithDefault sets the function that will be called to get the default value of
// the file data.
// If not set, the default value will be the zero value of the type.
func WithDefault[T any](f func() T) LiveOpt[T] {
	return func(s *LiveFile[T]) {
		s.defaultFunc = f
	}
}

// WithErrorHandler sets the function that will be called when an error occurs.
// If not set, errors are logged through the context logger.
func WithErrorHandler[T any](f func(context.Context, error)) LiveOpt[T] {
	return func(s *LiveFile[T]) {
		s.errHandler = f
	}
}

// WithLoadedCallback sets the function that will be called when the file is
// reloaded from the filesystem.
// The function will be called with the context and a pointer to the new data.
// Any access to the data MUST happen inside the callback and MUST NOT be
// stored outside of it.
func WithLoadedCallback[T any](f func(context.Context, *T)) LiveOpt[T] {
	return func(s *LiveFile[T]) {
		s.onLoaded = f
	}
}

// WithDecoder replaces the JSON decoder used to turn file content into T.
func WithDecoder[T any](f func(data []byte, v *T) error) LiveOpt[T] {
	return func(s *LiveFile[T]) {
		s.decode = f
	}
}

// WithOpenOptions sets the options passed to Open on every reload.
func WithOpenOptions[T any](opts ...Opt) LiveOpt[T] {
	return func(s *LiveFile[T]) {
		s.openOpts = opts
	}
}
