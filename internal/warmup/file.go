package warmup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/trigg3rX/triggerx-cql/pkg/datastore/cache"
	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

// QuerySpec is one entry of a warm-up file. Unset attributes are left to the
// session defaults.
type QuerySpec struct {
	Name        string `yaml:"name"`
	Statement   string `yaml:"statement"`
	Idempotent  *bool  `yaml:"idempotent,omitempty"`
	Consistency string `yaml:"consistency,omitempty"`
	Tracing     *bool  `yaml:"tracing,omitempty"`
	FetchSize   int    `yaml:"fetch_size,omitempty"`
}

type File struct {
	Queries []QuerySpec `yaml:"queries"`
}

// Query is a validated warm-up entry.
type Query struct {
	Name       string
	Key        cache.Key
	Definition types.QueryDefinition
}

func Load(path string) ([]Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read warm-up file: %w", err)
	}
	queries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return queries, nil
}

// Parse decodes and validates a warm-up file. Unknown fields are rejected.
func Parse(data []byte) ([]Query, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse warm-up file: %w", err)
	}

	queries := make([]Query, 0, len(f.Queries))
	seen := make(map[string]bool, len(f.Queries))
	for i, spec := range f.Queries {
		if spec.Name == "" {
			return nil, fmt.Errorf("query %d: name is required", i)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("query %q: duplicate name", spec.Name)
		}
		seen[spec.Name] = true

		def, err := spec.Definition()
		if err != nil {
			return nil, fmt.Errorf("query %q: %w", spec.Name, err)
		}
		key, err := cache.DeriveKey(def)
		if err != nil {
			return nil, fmt.Errorf("query %q: %w", spec.Name, err)
		}
		queries = append(queries, Query{Name: spec.Name, Key: key, Definition: def})
	}
	return queries, nil
}

func (s QuerySpec) Definition() (types.QueryDefinition, error) {
	var opts []types.QueryOption
	if s.Idempotent != nil {
		opts = append(opts, types.WithIdempotent(*s.Idempotent))
	}
	if s.Consistency != "" {
		c, err := types.ParseConsistency(s.Consistency)
		if err != nil {
			return types.QueryDefinition{}, err
		}
		opts = append(opts, types.WithConsistency(c))
	}
	if s.Tracing != nil {
		opts = append(opts, types.WithTracing(*s.Tracing))
	}
	if s.FetchSize < 0 {
		return types.QueryDefinition{}, fmt.Errorf("fetch_size cannot be negative, got: %d", s.FetchSize)
	}
	opts = append(opts, types.WithFetchSize(s.FetchSize))
	return types.NewQueryDefinition(s.Statement, opts...), nil
}

// SharedKeys groups query names by cache key, keeping only keys used by
// more than one query. Such queries share one prepared handle.
func SharedKeys(queries []Query) map[cache.Key][]string {
	byKey := make(map[cache.Key][]string)
	for _, q := range queries {
		byKey[q.Key] = append(byKey[q.Key], q.Name)
	}
	for key, names := range byKey {
		if len(names) < 2 {
			delete(byKey, key)
			continue
		}
		sort.Strings(names)
	}
	return byKey
}
