// SPDX-License-Identifier: MIT
// Package: lvtopo/complexio
//
// format.go - encodings, compression codecs and extension detection.

package complexio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnknownFormat indicates an unsupported format name or file extension.
	ErrUnknownFormat = errors.New("complexio: unknown format")

	// ErrParse indicates malformed input.
	ErrParse = errors.New("complexio: parse error")
)

// Format names an encoding.
type Format string

// Supported encodings.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// Codec names a stream compression.
type Codec string

// Supported codecs.
const (
	CodecNone Codec = ""
	CodecGzip Codec = "gzip"
	CodecZstd Codec = "zstd"
)

// ParseFormat resolves a user-supplied format name ("text", "txt", "yaml", "yml").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", name, ErrUnknownFormat)
	}
}

// DetectPath derives the encoding and codec from path's extensions:
// an optional trailing .gz or .zst, preceded by .txt, .yaml or .yml.
func DetectPath(path string) (Format, Codec, error) {
	name := strings.ToLower(filepath.Base(path))

	codec := CodecNone
	switch {
	case strings.HasSuffix(name, ".gz"):
		codec, name = CodecGzip, strings.TrimSuffix(name, ".gz")
	case strings.HasSuffix(name, ".zst"):
		codec, name = CodecZstd, strings.TrimSuffix(name, ".zst")
	}

	switch filepath.Ext(name) {
	case ".txt":
		return FormatText, codec, nil
	case ".yaml", ".yml":
		return FormatYAML, codec, nil
	default:
		return "", CodecNone, fmt.Errorf("DetectPath(%q): %w", path, ErrUnknownFormat)
	}
}
