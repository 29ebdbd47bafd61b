// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package envflag provides a wrapper around the standard flag package, allowing
// flags to be overridden by environment variables.
package envflag

import (
	"flag"
	"strconv"
)

// Type is a constraint that permits only types supported by envflag package.
type Type interface {
	int | bool | string
}

// Value sets up a flag with the given name, default value, and usage
// information.
//
// If the environment variable specified by envName is set and parses as T,
// it overrides the flag's default value. An explicit flag still wins.
func Value[T Type](
	name, envName string, value T, usage string,
	fs *flag.FlagSet, getenv func(string) string,
) *T {
	result := value
	if s := getenv(envName); s != "" {
		if v, err := parse[T](s); err == nil {
			result = v
		}
	}

	usage += " Can be overridden by " + envName + " environment variable."

	fv := &flagValue[T]{value: &result}
	fs.Var(fv, name, usage)
	return &result
}

type flagValue[T Type] struct {
	value *T
}

func (f *flagValue[T]) String() string {
	if f.value == nil {
		return ""
	}
	switch v := any(*f.value).(type) {
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	}
	return ""
}

func (f *flagValue[T]) Set(s string) error {
	v, err := parse[T](s)
	if err != nil {
		return err
	}
	*f.value = v
	return nil
}

// IsBoolFlag allows boolean flags to be passed without a value.
func (f *flagValue[T]) IsBoolFlag() bool {
	_, ok := any(*new(T)).(bool)
	return ok
}

func parse[T Type](s string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int:
		v, err := strconv.Atoi(s)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	case bool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	default:
		return any(s).(T), nil
	}
}
