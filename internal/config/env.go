package config

import (
	"os"
	"strconv"
	"strings"
)

// LookupFunc reads one environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// OSLookup reads from the process environment
var OSLookup LookupFunc = os.LookupEnv

// MapLookup builds a LookupFunc over a fixed set of values
func MapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func lookupValue(lookup LookupFunc, key string) (string, bool) {
	if lookup == nil {
		lookup = OSLookup
	}
	v, ok := lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	// "(true)" style values are accepted alongside bare ones
	if len(v) >= 2 && v[0] == '(' && v[len(v)-1] == ')' {
		v = strings.TrimSpace(v[1 : len(v)-1])
	}
	if v == "" {
		return "", false
	}
	return v, true
}

// EnvBool returns the boolean value of key, or def when it is absent,
// empty or not a recognised boolean.
func EnvBool(lookup LookupFunc, key string, def bool) bool {
	v, ok := lookupValue(lookup, key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		return def
	}
	return b
}

// EnvString returns the value of key, or def when it is absent or empty
func EnvString(lookup LookupFunc, key, def string) string {
	v, ok := lookupValue(lookup, key)
	if !ok {
		return def
	}
	return v
}

// EnvInt returns the integer value of key, or def when it is absent or malformed
func EnvInt(lookup LookupFunc, key string, def int) int {
	v, ok := lookupValue(lookup, key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
