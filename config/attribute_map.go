// Package config reads robot configuration files and decodes per-component attributes into
// typed configs.
package config

import (
	"github.com/pkg/errors"
)

// AttributeMap is a loosely typed set of component attributes, as read from JSON.
type AttributeMap map[string]interface{}

// Has reports whether name is set.
func (am AttributeMap) Has(name string) bool {
	_, has := am[name]
	return has
}

// String returns the string value of name, or "" when it is not set. It panics if the value is
// set to something other than a string.
func (am AttributeMap) String(name string) string {
	x := am[name]
	if x == nil {
		return ""
	}

	s, ok := x.(string)
	if ok {
		return s
	}

	panic(errors.Errorf("wanted a string for (%s) but got (%v) %T", name, x, x))
}

// Int returns the int value of name, or def when it is not set. JSON numbers decode as float64
// and are truncated.
func (am AttributeMap) Int(name string, def int) int {
	x, has := am[name]
	if !has {
		return def
	}

	switch v := x.(type) {
	case int:
		return v
	case float64:
		return int(v)
	}

	panic(errors.Errorf("wanted an int for (%s) but got (%v) %T", name, x, x))
}

// Float64 returns the float64 value of name, or def when it is not set.
func (am AttributeMap) Float64(name string, def float64) float64 {
	x, has := am[name]
	if !has {
		return def
	}

	switch v := x.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}

	panic(errors.Errorf("wanted a float64 for (%s) but got (%v) %T", name, x, x))
}

// Bool returns the bool value of name, or def when it is not set.
func (am AttributeMap) Bool(name string, def bool) bool {
	x, has := am[name]
	if !has {
		return def
	}

	v, ok := x.(bool)
	if ok {
		return v
	}

	panic(errors.Errorf("wanted a bool for (%s) but got (%v) %T", name, x, x))
}

// IntSlice returns the []int value of name, or nil when it is not set.
func (am AttributeMap) IntSlice(name string) []int {
	x := am[name]
	if x == nil {
		return nil
	}

	if v, ok := x.([]int); ok {
		return v
	}
	slice, ok := x.([]interface{})
	if !ok {
		panic(errors.Errorf("wanted a []int for (%s) but got (%v) %T", name, x, x))
	}
	ints := make([]int, 0, len(slice))
	for _, elem := range slice {
		switch v := elem.(type) {
		case int:
			ints = append(ints, v)
		case float64:
			ints = append(ints, int(v))
		default:
			panic(errors.Errorf("values in (%s) need to be ints but got %T", name, elem))
		}
	}
	return ints
}

// StringSlice returns the []string value of name, or nil when it is not set.
func (am AttributeMap) StringSlice(name string) []string {
	x := am[name]
	if x == nil {
		return nil
	}

	if v, ok := x.([]string); ok {
		return v
	}
	slice, ok := x.([]interface{})
	if !ok {
		panic(errors.Errorf("wanted a []string for (%s) but got (%v) %T", name, x, x))
	}
	strs := make([]string, 0, len(slice))
	for _, elem := range slice {
		s, ok := elem.(string)
		if !ok {
			panic(errors.Errorf("values in (%s) need to be strings but got %T", name, elem))
		}
		strs = append(strs, s)
	}
	return strs
}
