// Package config reads the key = value files that configure the game and its
// renderers.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const valueDelim = "="

// Values is a flat mapping of configuration keys to inferred values.
// Every value is an int, a float64 or a string.
type Values map[string]any

// SyntaxError reports a line that is not a key = value pair
type SyntaxError struct {
	File string
	Line int
	Text string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: expected key = value, got %q", e.File, e.Line, e.Text)
}

// TypeError reports a value that cannot be used as the requested type
type TypeError struct {
	Key   string
	Value any
	Want  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("config key %q: %v (%T) is not a valid %s", e.Key, e.Value, e.Value, e.Want)
}

// Load reads a configuration file
func Load(path string) (Values, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads key = value lines from r. Blank lines and lines starting
// with # are skipped. Later keys override earlier ones.
func Parse(r io.Reader, name string) (Values, error) {
	values := make(Values)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.Split(text, valueDelim)
		if len(parts) != 2 {
			return nil, &SyntaxError{File: name, Line: line, Text: text}
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			return nil, &SyntaxError{File: name, Line: line, Text: text}
		}
		values[key] = Infer(parts[1])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return values, nil
}

// Infer types a raw value: integer first, then float, then the trimmed string
func Infer(raw string) any {
	v := strings.TrimSpace(raw)
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}

// Has reports whether key is set
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// Int returns the integer at key, or def when absent
func (v Values) Int(key string, def int) (int, error) {
	raw, ok := v[key]
	if !ok {
		return def, nil
	}
	i, ok := raw.(int)
	if !ok {
		return 0, &TypeError{Key: key, Value: raw, Want: "integer"}
	}
	return i, nil
}

// Float returns the number at key, or def when absent. Integers are widened.
func (v Values) Float(key string, def float64) (float64, error) {
	raw, ok := v[key]
	if !ok {
		return def, nil
	}
	switch n := raw.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	}
	return 0, &TypeError{Key: key, Value: raw, Want: "number"}
}

// String returns the value at key formatted as text, or def when absent
func (v Values) String(key string, def string) string {
	raw, ok := v[key]
	if !ok {
		return def
	}
	switch s := raw.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	}
	return fmt.Sprint(raw)
}

// Bool accepts 0/1 and on/off/true/false/yes/no
func (v Values) Bool(key string, def bool) (bool, error) {
	raw, ok := v[key]
	if !ok {
		return def, nil
	}
	switch b := raw.(type) {
	case int:
		if b == 0 || b == 1 {
			return b == 1, nil
		}
	case string:
		switch strings.ToLower(b) {
		case "on", "true", "yes":
			return true, nil
		case "off", "false", "no":
			return false, nil
		}
	}
	return false, &TypeError{Key: key, Value: raw, Want: "boolean"}
}
