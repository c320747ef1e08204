package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/quadfit/errs"
	"gopkg.in/yaml.v3"
)

// LoadYAML decodes a single series from r and validates it.
//
// The document uses the keys name, x_label, y_label, x and y. Unknown keys are
// rejected so that typos surface as errors instead of silently empty columns.
//
// Example document:
//
//	name: harga-rumah
//	x_label: Luas Rumah (m²)
//	y_label: Harga (juta Rp)
//	x: [30, 36, 45]
//	y: [120, 150, 200]
func LoadYAML(r io.Reader) (*Series, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Series
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode series: %w", errs.ErrEmptyInput)
		}

		return nil, fmt.Errorf("decode series: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadFile reads a series from a YAML file. An empty series name is replaced by
// the file path.
func LoadFile(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}

	return s, nil
}
