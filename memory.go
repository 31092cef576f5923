package osfile

import (
	"context"
	"errors"

	"github.com/go-git/go-billy/v5/util"
)

// OpenMemory opens a File over a private in-memory copy of data, named
// name. The File behaves exactly like one opened from disk.
func OpenMemory(ctx context.Context, name string, data []byte) (*File, error) {
	if name == "" {
		return nil, newError(CodeNotFound, "open", name, errors.New("empty path"))
	}
	mem := NewMemFS()
	if err := util.WriteFile(mem.Raw(), name, data, 0o644); err != nil {
		return nil, newError(CodeNotFound, "open", name, err)
	}
	return open(ctx, mem, name)
}
