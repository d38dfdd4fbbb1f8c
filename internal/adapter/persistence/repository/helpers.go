package repository

import (
	"os"
	"strconv"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// tableName resolves a table name from its env override, falling back to the
// default, and applies the optional DYNAMODB_TABLE_PREFIX used to share one
// AWS account between environments.
func tableName(envKey, def string) string {
	name := getenvDefault(envKey, def)
	if prefix := os.Getenv("DYNAMODB_TABLE_PREFIX"); prefix != "" {
		return prefix + name
	}
	return name
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
