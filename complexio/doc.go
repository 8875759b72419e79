// SPDX-License-Identifier: MIT

// Package complexio reads and writes simplicial complexes as simplex lists.
//
// Two encodings are supported:
//
//   - Text: one simplex per line, vertex labels separated by whitespace or
//     commas. Everything after '#' is a comment; blank lines are skipped.
//
//     # filled triangle
//     0 1 2
//     0,1
//
//   - YAML: a single mapping with a "simplices" sequence of vertex lists,
//     written in flow style: {simplices: [[0], [1], [0, 1]]}.
//
// ReadFile and WriteFile pick the encoding from the file extension (.txt,
// .yaml, .yml) and compress transparently when it is followed by .gz (gzip)
// or .zst (zstandard), e.g. "torus.yaml.zst".
//
// Inputs must be closed under faces unless WithClosure is given, in which
// case every listed simplex is expanded to its full closure.
//
// Errors:
//
//   - ErrUnknownFormat  unsupported format name or file extension
//   - ErrParse          malformed input (wrapped with the line or entry number)
//   - simplicial.ErrNotClosed  a listed simplex lacks one of its faces
package complexio
