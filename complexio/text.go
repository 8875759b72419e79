// SPDX-License-Identifier: MIT
// Package: lvtopo/complexio
//
// text.go - the line-oriented simplex list encoding.

package complexio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/simplicial"
)

const (
	commentMark = "#"

	// maxLineBytes caps a single line; longer lines are a parse error.
	maxLineBytes = 1 << 20
)

// readText parses one simplex per non-blank line.
func readText(r io.Reader) ([]simplex.Simplex, error) {
	var out []simplex.Simplex

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.Index(text, commentMark); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || unicode.IsSpace(c)
		})
		if len(fields) == 0 {
			continue
		}

		vs := make([]simplex.Vertex, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex %q: %w", line, f, ErrParse)
			}
			vs[i] = simplex.Vertex(v)
		}
		s, err := simplex.New(vs...)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v: %w", line, err, ErrParse)
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		// The scanner stops on the line it could not buffer.
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("line %d: longer than %d bytes: %w", line+1, maxLineBytes, ErrParse)
		}
		return nil, fmt.Errorf("read: %w", err)
	}

	return out, nil
}

// writeText emits a header comment and then every simplex in complex order.
func writeText(w io.Writer, k *simplicial.Complex) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d simplices, dimension %d\n", k.Len(), k.Dimension())

	var buf []byte
	k.Each(func(_ simplicial.ID, s simplex.Simplex) bool {
		buf = buf[:0]
		for i := 0; i < s.Size(); i++ {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendUint(buf, uint64(s.Vertex(i)), 10)
		}
		buf = append(buf, '\n')
		_, _ = bw.Write(buf)
		return true
	})

	return bw.Flush()
}
