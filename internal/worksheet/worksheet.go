// SPDX-License-Identifier: MIT

// Package worksheet loads YAML worksheets (named vectors, named matrices and a
// list of steps) and evaluates them against the vector and matrix packages.
//
// A worksheet looks like:
//
//	name: demo
//	vectors:
//	  u: [1, 0, 0]
//	  v: [0, 1, 0]
//	matrices:
//	  A: [[1, 2], [3, 4]]
//	steps:
//	  - op: cross
//	    args: [u, v]
//	  - op: power
//	    args: [A]
//	    exponent: 3
//	    as: A3
//
// Load and Parse only decode and check the document structure; operand kinds
// and shapes are checked by the Runner when each step executes.
package worksheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultName is used when neither the document nor the file name provides one.
const DefaultName = "worksheet"

// Worksheet is the decoded YAML document.
type Worksheet struct {
	Name     string                 `yaml:"name"`
	Vectors  map[string][]float64   `yaml:"vectors"`
	Matrices map[string][][]float64 `yaml:"matrices"`
	Steps    []Step                 `yaml:"steps"`
}

// Step is one operation. Only the parameters relevant to Op are read.
type Step struct {
	Op          string   `yaml:"op"`
	Args        []string `yaml:"args,omitempty"`
	As          string   `yaml:"as,omitempty"`
	Exponent    *int     `yaml:"exponent,omitempty"`
	Scalar      *float64 `yaml:"scalar,omitempty"`
	Orientation string   `yaml:"orientation,omitempty"`
	Index       int      `yaml:"index,omitempty"`
	Index2      int      `yaml:"index2,omitempty"`
	Range       []int    `yaml:"range,omitempty"`
	Size        int      `yaml:"size,omitempty"`
}

// DefaultWorksheet returns an empty worksheet carrying DefaultName.
func DefaultWorksheet() *Worksheet {
	return &Worksheet{Name: DefaultName}
}

// Load reads and parses the worksheet at path. When the document has no name,
// the file's base name without extension is used.
func Load(path string) (*Worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ws, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if ws.Name == DefaultName {
		base := filepath.Base(path)
		ws.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return ws, nil
}

// Parse decodes a worksheet document over DefaultWorksheet and validates it.
// Unknown keys are rejected so typos in step parameters do not pass silently.
func Parse(data []byte) (*Worksheet, error) {
	ws := DefaultWorksheet()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(ws); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyWorksheet
		}
		return nil, err
	}
	if ws.Name == "" {
		ws.Name = DefaultName
	}
	if err := ws.Validate(); err != nil {
		return nil, err
	}

	return ws, nil
}

// Save writes ws as YAML to path.
func Save(path string, ws *Worksheet) error {
	data, err := yaml.Marshal(ws)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks the document structure: at least one step, every step has
// an op, and no name is declared both as a vector and as a matrix.
func (w *Worksheet) Validate() error {
	if len(w.Steps) == 0 {
		return ErrEmptyWorksheet
	}
	for _, name := range sortedKeys(w.Vectors) {
		if _, ok := w.Matrices[name]; ok {
			return fmt.Errorf("%q: %w", name, ErrDuplicateName)
		}
	}
	for i, s := range w.Steps {
		if strings.TrimSpace(s.Op) == "" {
			return fmt.Errorf("step %d: empty op: %w", i, ErrUnknownOp)
		}
	}

	return nil
}

// sortedKeys returns the keys of m in ascending order so loading and error
// reporting do not depend on map iteration order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
