// SPDX-License-Identifier: MIT
// Package: lvtopo/complexio
//
// yaml.go - the YAML simplex list encoding.

package complexio

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/simplicial"
)

const yamlSimplicesKey = "simplices"

// yamlDocument is the decoded shape of a YAML complex.
type yamlDocument struct {
	Simplices [][]uint32 `yaml:"simplices"`
}

// readYAML decodes a single document. An empty stream is an empty complex.
func readYAML(r io.Reader) ([]simplex.Simplex, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml: %v: %w", err, ErrParse)
	}

	out := make([]simplex.Simplex, 0, len(doc.Simplices))
	for i, vs := range doc.Simplices {
		s, err := simplex.New(vs...)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %v: %w", i, err, ErrParse)
		}
		out = append(out, s)
	}

	return out, nil
}

// writeYAML encodes k with one flow-style vertex list per simplex.
func writeYAML(w io.Writer, k *simplicial.Complex) error {
	list := &yaml.Node{Kind: yaml.SequenceNode}
	k.Each(func(_ simplicial.ID, s simplex.Simplex) bool {
		item := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for i := 0; i < s.Size(); i++ {
			item.Content = append(item.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!int",
				Value: strconv.FormatUint(uint64(s.Vertex(i)), 10),
			})
		}
		list.Content = append(list.Content, item)
		return true
	})
	if len(list.Content) == 0 {
		list.Style = yaml.FlowStyle
	}

	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: yamlSimplicesKey},
			list,
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}

	return enc.Close()
}
