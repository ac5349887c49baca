package config

import (
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Kind is the TOML type of a document node.
type Kind int

const (
	KindUnknown Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindDatetime
	KindLocalDatetime
	KindLocalDate
	KindLocalTime
	KindArray
	KindTable
)

var kindNames = map[Kind]string{
	KindUnknown:       "unknown",
	KindString:        "string",
	KindInteger:       "integer",
	KindFloat:         "float",
	KindBoolean:       "boolean",
	KindDatetime:      "datetime",
	KindLocalDatetime: "local-datetime",
	KindLocalDate:     "local-date",
	KindLocalTime:     "local-time",
	KindArray:         "array",
	KindTable:         "table",
}

// String returns the kind's name as used in error messages and flags.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, kindName := range kindNames {
		if kind != KindUnknown && kindName == name {
			return kind, true
		}
	}
	return KindUnknown, false
}

// KindOf classifies a node decoded by go-toml.
func KindOf(v any) Kind {
	switch v.(type) {
	case string:
		return KindString
	case int64, int, int32, int16, int8, uint64, uint, uint32, uint16, uint8:
		return KindInteger
	case float64, float32:
		return KindFloat
	case bool:
		return KindBoolean
	case time.Time:
		return KindDatetime
	case toml.LocalDateTime:
		return KindLocalDatetime
	case toml.LocalDate:
		return KindLocalDate
	case toml.LocalTime:
		return KindLocalTime
	case []any:
		return KindArray
	case map[string]any:
		return KindTable
	default:
		return KindUnknown
	}
}

// In reports whether k is one of kinds.
func (k Kind) In(kinds []Kind) bool {
	for _, kind := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// KindList renders kinds as "integer, string".
func KindList(kinds []Kind) string {
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.String()
	}
	return strings.Join(names, ", ")
}
