// SPDX-License-Identifier: MIT
// Package: lvtopo/complexio
//
// io.go - Read/Write entry points and file helpers with compression.

package complexio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/simplicial"
)

// ReadOption customizes Read and ReadFile.
type ReadOption func(*readConfig)

type readConfig struct {
	closure bool
}

// WithClosure treats every listed simplex as maximal and adds its faces,
// so inputs need not be closed.
func WithClosure() ReadOption {
	return func(c *readConfig) { c.closure = true }
}

// Read decodes a complex from r in the given format.
//
// Errors: ErrUnknownFormat, ErrParse, or simplicial.ErrNotClosed when a face
// is missing and WithClosure is not set.
func Read(r io.Reader, format Format, opts ...ReadOption) (*simplicial.Complex, error) {
	var cfg readConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		list []simplex.Simplex
		err  error
	)
	switch format {
	case FormatText:
		list, err = readText(r)
	case FormatYAML:
		list, err = readYAML(r)
	default:
		return nil, fmt.Errorf("Read(%q): %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("Read(%s): %w", format, err)
	}

	if cfg.closure {
		return simplicial.Closure(list...), nil
	}
	k, err := simplicial.New(list...)
	if err != nil {
		return nil, fmt.Errorf("Read(%s): %w", format, err)
	}

	return k, nil
}

// Write encodes k to w in the given format, in complex order.
func Write(w io.Writer, k *simplicial.Complex, format Format) error {
	var err error
	switch format {
	case FormatText:
		err = writeText(w, k)
	case FormatYAML:
		err = writeYAML(w, k)
	default:
		return fmt.Errorf("Write(%q): %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("Write(%s): %w", format, err)
	}

	return nil
}

// ReadFile reads path, choosing encoding and decompression from its name.
func ReadFile(path string, opts ...ReadOption) (*simplicial.Complex, error) {
	format, codec, err := DetectPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	r, err := decompress(f, codec)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}
	defer r.Close()

	k, err := Read(r, format, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}

	return k, nil
}

// WriteFile writes k to path, choosing encoding and compression from its
// name. The file is created or truncated.
func WriteFile(path string, k *simplicial.Complex) (err error) {
	format, codec, err := DetectPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteFile(%s): %w", path, cerr)
		}
	}()

	w, err := compress(f, codec)
	if err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	if err := Write(w, k, format); err != nil {
		_ = w.Close()
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}

	return nil
}

// nopWriteCloser turns an io.Writer into an io.WriteCloser whose Close does
// nothing; the underlying file is closed by its owner.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// decompress wraps r according to codec.
func decompress(r io.Reader, codec Codec) (io.ReadCloser, error) {
	switch codec {
	case CodecNone:
		return io.NopCloser(r), nil
	case CodecGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return zr, nil
	case CodecZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return dec.IOReadCloser(), nil
	default:
		return nil, errors.New("complexio: unknown codec " + string(codec))
	}
}

// compress wraps w according to codec. Closing the result flushes the
// compressor but leaves w open.
func compress(w io.Writer, codec Codec) (io.WriteCloser, error) {
	switch codec {
	case CodecNone:
		return nopWriteCloser{w}, nil
	case CodecGzip:
		return gzip.NewWriter(w), nil
	case CodecZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return enc, nil
	default:
		return nil, errors.New("complexio: unknown codec " + string(codec))
	}
}
