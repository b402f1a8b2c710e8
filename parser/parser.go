/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser parses design-token exports into token collections.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/milon/fs"
	"bennypowers.dev/milon/token"
)

// Parser parses token export files (JSON with comments, or YAML).
type Parser struct{}

// New creates a new export parser.
func New() *Parser {
	return &Parser{}
}

// ParseFile reads and parses a token export file.
func (p *Parser) ParseFile(filesystem fs.FileSystem, path string) ([]*token.Token, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tokens, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tokens, nil
}

// Parse parses JSON or YAML export data and returns the token collection.
// Structural problems (non-array root, malformed entries, duplicate IDs)
// are fatal: no partial collection is returned.
func (p *Parser) Parse(data []byte) ([]*token.Token, error) {
	var raw any

	if isLikelyJSON(data) {
		// JSON path: strip comments and parse
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else {
		var yamlRaw any
		if err := yaml.Unmarshal(data, &yamlRaw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		raw = normalizeMap(yamlRaw)
	}

	entries, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("token export must be an array of tokens")
	}

	tokens := make([]*token.Token, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for i, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("token %d: expected an object, got %T", i, entry)
		}

		tok, err := parseToken(obj)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		if seen[tok.ID] {
			return nil, fmt.Errorf("duplicate token id %q", tok.ID)
		}
		seen[tok.ID] = true
		tokens = append(tokens, tok)
	}

	return tokens, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// An export is a JSON array, so it starts with '[' (optionally preceded
// by whitespace/BOM or a jsonc comment).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '[', '{', '/':
			return true
		default:
			return false
		}
	}
	return false
}

// normalizeMap recursively converts map[interface{}]interface{} to
// map[string]any so JSON and YAML inputs share one extraction path.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}

// parseToken builds one Token from a raw export entry.
func parseToken(obj map[string]any) (*token.Token, error) {
	id, ok := obj["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("missing or non-string id")
	}

	typeStr, _ := obj["type"].(string)
	typ := token.Type(typeStr)

	tok := &token.Token{ID: id, Type: typ}

	if typ.Recognized() {
		value, err := parseValue(typ, obj["value"])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		tok.Value = value
	}

	ext, err := parseExtensions(typ, obj["extensions"])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	tok.Extensions = ext

	return tok, nil
}

// parseValue builds a typed value for a recognized token type. The shape
// of the raw value must match the declared type.
func parseValue(typ token.Type, raw any) (token.Value, error) {
	switch typ {
	case token.TypeColor:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("color value must be a string, got %T", raw)
		}
		return token.Color(s), nil

	case token.TypeDimension:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("dimension value must be a string, got %T", raw)
		}
		return token.Dimension(s), nil

	case token.TypeTypography:
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("typography value must be an object, got %T", raw)
		}
		return parseTypography(obj), nil

	case token.TypeShadow:
		return parseShadow(raw)

	default:
		return nil, nil
	}
}

func parseTypography(obj map[string]any) token.Typography {
	str := func(key string) string {
		s, _ := obj[key].(string)
		return s
	}
	return token.Typography{
		FontFamily:     str("fontFamily"),
		FontWeight:     obj["fontWeight"],
		FontSize:       str("fontSize"),
		LineHeight:     str("lineHeight"),
		LetterSpacing:  str("letterSpacing"),
		TextDecoration: str("textDecoration"),
		TextCase:       str("textCase"),
	}
}

func parseShadow(raw any) (token.Shadow, error) {
	// Single-layer shadows may be exported as a bare object.
	layers, ok := raw.([]any)
	if !ok {
		if obj, isObj := raw.(map[string]any); isObj {
			layers = []any{obj}
		} else {
			return nil, fmt.Errorf("shadow value must be an array of layers, got %T", raw)
		}
	}

	shadow := make(token.Shadow, 0, len(layers))
	for i, layer := range layers {
		obj, ok := layer.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("shadow layer %d must be an object, got %T", i, layer)
		}
		str := func(key string) string {
			s, _ := obj[key].(string)
			return s
		}
		inset, _ := obj["inset"].(bool)
		shadow = append(shadow, token.ShadowLayer{
			Color:   str("color"),
			Blur:    str("blur"),
			Spread:  str("spread"),
			OffsetX: str("offsetX"),
			OffsetY: str("offsetY"),
			Inset:   inset,
		})
	}
	return shadow, nil
}

// parseExtensions builds the side-channel metadata for a token. Mode
// override values must match the shape of the token's declared type; for
// unrecognized types mode overrides are ignored.
func parseExtensions(typ token.Type, raw any) (*token.Extensions, error) {
	if raw == nil {
		return nil, nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("extensions must be an object, got %T", raw)
	}

	ext := &token.Extensions{}

	if collection, ok := obj["collection"].(map[string]any); ok {
		ext.Collection, _ = collection["name"].(string)
	}

	if modes, ok := obj["mode"].(map[string]any); ok && typ.Recognized() {
		ext.Modes = make(map[string]token.Value, len(modes))
		for name, rawValue := range modes {
			value, err := parseValue(typ, rawValue)
			if err != nil {
				return nil, fmt.Errorf("mode %q: %w", name, err)
			}
			ext.Modes[name] = value
		}
	}

	if ext.Collection == "" && len(ext.Modes) == 0 {
		return nil, nil
	}
	return ext, nil
}
