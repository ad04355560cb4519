// Package patch parses and applies replace-only patch documents to
// planning entities.
package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/heartmarshall/planboard-backend/internal/domain"
)

// OpReplace is the only supported operation.
const OpReplace = "replace"

// Replace sets the field at Path to Value.
type Replace struct {
	Path  string
	Value json.RawMessage
}

// NewReplace builds a Replace from a Go value.
func NewReplace(path string, value any) (Replace, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return Replace{}, fmt.Errorf("encode %s: %w", path, err)
	}
	return Replace{Path: path, Value: raw}, nil
}

// Field describes one patchable path.
type Field struct {
	Nullable bool
	// Virtual fields are accepted by Parse but must be resolved into real
	// fields before Apply.
	Virtual bool
}

var whitelist = map[domain.Kind]map[string]Field{
	domain.KindProject: {
		"/name":   {},
		"/info":   {Nullable: true},
		"/active": {},
	},
	domain.KindEpic: {
		"/name":   {},
		"/info":   {Nullable: true},
		"/active": {},
	},
	domain.KindStory: {
		"/name":   {},
		"/info":   {Nullable: true},
		"/active": {},
	},
	domain.KindMockup: {
		"/url":       {},
		"/imagePath": {},
		"/image":     {Virtual: true},
		"/raw":       {Nullable: true},
		"/active":    {},
	},
	domain.KindAssertion: {
		"/info":   {},
		"/active": {},
	},
	domain.KindInteraction: {
		"/action":  {},
		"/target":  {},
		"/outcome": {},
		"/active":  {},
	},
}

// Allowed reports whether path is patchable on kind.
func Allowed(kind domain.Kind, path string) (Field, bool) {
	f, ok := whitelist[kind][path]
	return f, ok
}

type rawOperation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value"`
}

// Parse decodes a patch document and checks every operation against the
// closed operation set and the path whitelist of kind.
func Parse(kind domain.Kind, data []byte) ([]Replace, error) {
	var raw []rawOperation
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domain.NewValidationError("patch", "must be an array of operations")
	}
	if len(raw) == 0 {
		return nil, domain.NewValidationError("patch", "must contain at least one operation")
	}

	ops := make([]Replace, 0, len(raw))
	for i, op := range raw {
		if op.Op != OpReplace {
			return nil, &domain.PatchError{Index: i, Op: op.Op, Path: op.Path, Reason: "unsupported operation"}
		}
		field, ok := Allowed(kind, op.Path)
		if !ok {
			return nil, &domain.PatchError{Index: i, Op: op.Op, Path: op.Path, Reason: "unknown path"}
		}
		if op.Value == nil {
			return nil, &domain.PatchError{Index: i, Op: op.Op, Path: op.Path, Reason: "missing value"}
		}
		if isNull(op.Value) && !field.Nullable {
			return nil, &domain.PatchError{Index: i, Op: op.Op, Path: op.Path, Reason: "must not be null"}
		}
		ops = append(ops, Replace{Path: op.Path, Value: op.Value})
	}
	return ops, nil
}

// Apply returns a patched copy of entity. The original is never modified
// and nothing is returned unless every operation applies and the result
// validates.
func Apply[T any, P domain.EntityPtr[T]](entity P, ops []Replace) (P, error) {
	kind := entity.NodeKind()

	doc, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", kind, err)
	}

	for i, op := range ops {
		field, ok := Allowed(kind, op.Path)
		switch {
		case !ok:
			return nil, opError(i, op, "unknown path")
		case field.Virtual:
			return nil, opError(i, op, "path must be resolved before apply")
		case isNull(op.Value) && !field.Nullable:
			return nil, opError(i, op, "must not be null")
		}

		name := fieldName(op.Path)
		key := escapeKey(name)
		if !gjson.GetBytes(doc, key).Exists() {
			return nil, opError(i, op, "path not found")
		}
		if err := checkType[T](name, op.Value); err != nil {
			return nil, opError(i, op, "invalid value")
		}

		doc, err = sjson.SetRawBytes(doc, key, op.Value)
		if err != nil {
			return nil, opError(i, op, err.Error())
		}
	}

	out := P(new(T))
	if err := json.Unmarshal(doc, out); err != nil {
		return nil, fmt.Errorf("decode patched %s: %w", kind, err)
	}
	// seq is not part of the document.
	if src, ok := any(entity).(domain.Sequenced); ok {
		any(out).(domain.Sequenced).Sequence().Seq = src.Sequence().Seq
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// checkType decodes a single field into a scratch T so a wrong JSON type is
// reported against its own operation.
func checkType[T any](key string, value json.RawMessage) error {
	scratch := make(map[string]json.RawMessage, 1)
	scratch[key] = value
	data, err := json.Marshal(scratch)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, new(T))
}

// fieldName decodes a single-segment JSON pointer.
func fieldName(path string) string {
	return strings.NewReplacer("~1", "/", "~0", "~").Replace(strings.TrimPrefix(path, "/"))
}

// escapeKey quotes gjson/sjson path syntax in a field name.
func escapeKey(name string) string {
	return strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`).Replace(name)
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

func opError(i int, op Replace, reason string) error {
	return &domain.PatchError{Index: i, Op: OpReplace, Path: op.Path, Reason: reason}
}
