// Command fhdump prints the size, content type and a hex dump of a byte
// range of a file.
//
//	fhdump [-offset N] [-length N] [-tail N] PATH
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"woland.xyz/osfile"
)

// sniffLen is how much of the head of the file is used for type detection.
const sniffLen = 512

var errUsage = errors.New("usage: fhdump [-offset N] [-length N] [-tail N] PATH")

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := cfg.logger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	ctx := logger.WithContext(context.Background())

	if err := run(ctx, cfg, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logger.Error().Err(err).Msg("fhdump failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("fhdump", flag.ContinueOnError)
	offset := flags.Int64("offset", 0, "first byte to dump")
	length := flags.Int("length", 256, "number of bytes to dump")
	tail := flags.Int64("tail", 0, "dump the last N bytes, overrides -offset")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 || *length < 0 || *offset < 0 || *tail < 0 {
		return errUsage
	}
	path := flags.Arg(0)

	return osfile.With(ctx, path, func(f *osfile.File) error {
		size, err := f.Size()
		if err != nil {
			return err
		}

		head := make([]byte, sniffLen)
		n, err := f.ReadInto(head, 0, len(head))
		if err != nil {
			return err
		}
		mtype := mimetype.Detect(head[:n])

		if *tail > 0 {
			err = f.SeekFromEnd(-min(*tail, size))
		} else {
			err = f.SeekFromBegin(*offset)
		}
		if err != nil {
			return err
		}
		start, err := f.Tell()
		if err != nil {
			return err
		}

		buf := make([]byte, *length)
		n, err = f.ReadInto(buf, 0, len(buf))
		if err != nil {
			return err
		}
		zerolog.Ctx(ctx).Debug().
			Str("path", f.Name()).
			Int64("offset", start).
			Int("read", n).
			Msg("dump")

		fmt.Fprintf(stdout, "name: %s\nsize: %d\ntype: %s\nrange: %d-%d\n",
			f.Name(), size, mtype.String(), start, start+int64(n))
		dumper := hex.Dumper(stdout)
		if _, err := dumper.Write(buf[:n]); err != nil {
			return err
		}
		return dumper.Close()
	}, cfg.openOptions()...)
}
