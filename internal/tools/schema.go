// Package tools defines the tool catalog and the dispatcher that validates
// and routes invocations to the git operation layer.
package tools

import (
	"fmt"
	"math"

	gitmcperrors "gitmcp.dev/gitmcp/internal/errors"
)

// ParamType enumerates the argument types a tool schema can declare.
type ParamType string

const (
	TypeString      ParamType = "string"
	TypeInteger     ParamType = "integer"
	TypeBoolean     ParamType = "boolean"
	TypeStringArray ParamType = "array"
)

// Param describes one named argument of a tool schema.
type Param struct {
	Name        string
	Description string
	Type        ParamType
	Required    bool
	// Default applies when an optional argument is absent. Nil means the
	// zero value for the type.
	Default any
}

// Descriptor describes one tool: its wire identifier, human description and
// argument schema. Descriptors are immutable and constructed once at process
// start.
type Descriptor struct {
	Name        string
	Description string
	Params      []Param
}

// InputSchema renders the argument schema as a JSON-schema object for the
// wire-level tool listing.
func (d Descriptor) InputSchema() map[string]any {
	properties := map[string]any{}
	var required []string

	for _, p := range d.Params {
		prop := map[string]any{}
		if p.Type == TypeStringArray {
			prop["type"] = "array"
			prop["items"] = map[string]any{"type": "string"}
		} else {
			prop["type"] = string(p.Type)
		}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		if p.Default != nil {
			prop["default"] = p.Default
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Args holds an invocation's arguments after validation and coercion against
// a descriptor's schema.
type Args map[string]any

// String returns the string argument with the given name.
func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Int returns the integer argument with the given name.
func (a Args) Int(name string) int {
	v, _ := a[name].(int)
	return v
}

// Bool returns the boolean argument with the given name.
func (a Args) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

// Strings returns the string-list argument with the given name.
func (a Args) Strings(name string) []string {
	v, _ := a[name].([]string)
	return v
}

// Coerce validates raw wire arguments against the schema, converting JSON
// values to their declared types and applying defaults for absent optional
// parameters. Arguments not declared in the schema are rejected, never
// silently accepted.
func (d Descriptor) Coerce(raw map[string]any) (Args, error) {
	declared := map[string]Param{}
	for _, p := range d.Params {
		declared[p.Name] = p
	}

	for name := range raw {
		if _, ok := declared[name]; !ok {
			return nil, gitmcperrors.NewInvalidArgumentError(name, "not part of the tool schema")
		}
	}

	coerced := Args{}
	for _, p := range d.Params {
		value, present := raw[p.Name]
		if !present || value == nil {
			if p.Required {
				return nil, gitmcperrors.NewMissingArgumentError(p.Name)
			}
			coerced[p.Name] = p.zeroOrDefault()
			continue
		}

		converted, err := coerceValue(p, value)
		if err != nil {
			return nil, err
		}
		coerced[p.Name] = converted
	}
	return coerced, nil
}

func (p Param) zeroOrDefault() any {
	if p.Default != nil {
		return p.Default
	}
	switch p.Type {
	case TypeString:
		return ""
	case TypeInteger:
		return 0
	case TypeBoolean:
		return false
	case TypeStringArray:
		return []string(nil)
	}
	return nil
}

func coerceValue(p Param, value any) (any, error) {
	switch p.Type {
	case TypeString:
		s, ok := value.(string)
		if !ok {
			return nil, gitmcperrors.NewInvalidArgumentError(p.Name, fmt.Sprintf("expected string, got %T", value))
		}
		return s, nil

	case TypeInteger:
		switch n := value.(type) {
		case int:
			return n, nil
		case float64:
			if n != math.Trunc(n) {
				return nil, gitmcperrors.NewInvalidArgumentError(p.Name, fmt.Sprintf("expected integer, got %v", n))
			}
			return int(n), nil
		default:
			return nil, gitmcperrors.NewInvalidArgumentError(p.Name, fmt.Sprintf("expected integer, got %T", value))
		}

	case TypeBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, gitmcperrors.NewInvalidArgumentError(p.Name, fmt.Sprintf("expected boolean, got %T", value))
		}
		return b, nil

	case TypeStringArray:
		switch list := value.(type) {
		case []string:
			return list, nil
		case []any:
			out := make([]string, 0, len(list))
			for _, item := range list {
				s, ok := item.(string)
				if !ok {
					return nil, gitmcperrors.NewInvalidArgumentError(p.Name, fmt.Sprintf("expected string list, got %T element", item))
				}
				out = append(out, s)
			}
			return out, nil
		default:
			return nil, gitmcperrors.NewInvalidArgumentError(p.Name, fmt.Sprintf("expected string list, got %T", value))
		}
	}
	return nil, gitmcperrors.NewInvalidArgumentError(p.Name, fmt.Sprintf("unsupported parameter type %q", p.Type))
}
