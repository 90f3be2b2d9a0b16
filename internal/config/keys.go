package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKey is returned for dotted keys that name no config field.
var ErrUnknownKey = errors.New("unknown configuration key")

// Get returns the value at a dotted key such as "rates.base_url".
func (c *Config) Get(key string) (any, error) {
	tree, err := c.tree()
	if err != nil {
		return nil, err
	}
	var node any = tree
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
		if node, ok = m[part]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
	}
	return node, nil
}

// Set parses value as a YAML scalar and stores it at a dotted key. Only
// leaf keys can be set, and the result must decode into Config.
func (c *Config) Set(key, value string) error {
	current, err := c.Get(key)
	if err != nil {
		return err
	}
	if _, isSection := current.(map[string]any); isSection {
		return fmt.Errorf("%s is a section; set one of its keys instead", key)
	}

	var parsed any
	if err = yaml.Unmarshal([]byte(value), &parsed); err != nil {
		return fmt.Errorf("parsing value for %s: %w", key, err)
	}
	if parsed == nil {
		parsed = ""
	}

	tree, err := c.tree()
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	m := tree
	for _, part := range parts[:len(parts)-1] {
		m, _ = m[part].(map[string]any)
	}
	m[parts[len(parts)-1]] = parsed

	data, err := yaml.Marshal(tree)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	var next Config
	if err = yaml.Unmarshal(data, &next); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	next.configPath = c.configPath
	*c = next
	return nil
}

// List returns every leaf key with its value, sorted by key.
func (c *Config) List() ([]KeyValue, error) {
	tree, err := c.tree()
	if err != nil {
		return nil, err
	}
	var out []KeyValue
	flatten("", tree, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// KeyValue is one leaf of the configuration.
type KeyValue struct {
	Key   string
	Value any
}

func flatten(prefix string, m map[string]any, out *[]KeyValue) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok {
			flatten(key, child, out)
			continue
		}
		*out = append(*out, KeyValue{Key: key, Value: v})
	}
}

// tree round-trips the config through YAML, so only serialised fields appear.
// Keys tagged omitempty are included with their zero value.
func (c *Config) tree() (map[string]any, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	var tree map[string]any
	if err = yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("reading config tree: %w", err)
	}
	addOptional(tree, "logging", "file")
	addOptional(tree, "rates.cache", "directory")
	return tree, nil
}

func addOptional(tree map[string]any, section, key string) {
	m := tree
	for _, part := range strings.Split(section, ".") {
		next, ok := m[part].(map[string]any)
		if !ok {
			return
		}
		m = next
	}
	if _, ok := m[key]; !ok {
		m[key] = ""
	}
}
