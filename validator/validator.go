/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator provides shape validation for token export files.
package validator

import (
	"fmt"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/milon/token"
)

// ValidationError represents a problem found in a token export.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path locates the problematic element (token id or array index).
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Validate checks that export content has the expected shape: an array of
// token objects with unique ids and type-matching values.
func Validate(content []byte, filePath string) []ValidationError {
	var data any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return []ValidationError{{
			FilePath: filePath,
			Message:  fmt.Sprintf("failed to parse content: %v", err),
		}}
	}

	entries, ok := data.([]any)
	if !ok {
		return []ValidationError{{
			FilePath:   filePath,
			Message:    fmt.Sprintf("token export must be an array, got %T", data),
			Suggestion: "export tokens as a flat JSON array",
		}}
	}

	var errors []ValidationError
	seen := make(map[string]bool, len(entries))

	for i, entry := range entries {
		indexPath := fmt.Sprintf("[%d]", i)

		obj, ok := entry.(map[string]any)
		if !ok {
			errors = append(errors, ValidationError{
				FilePath: filePath,
				Path:     indexPath,
				Message:  fmt.Sprintf("expected a token object, got %T", entry),
			})
			continue
		}

		id, _ := obj["id"].(string)
		path := indexPath
		if id != "" {
			path = id
		} else {
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Path:       indexPath,
				Message:    "missing or non-string id",
				Suggestion: "every token needs a unique string id",
			})
		}

		if id != "" && seen[id] {
			errors = append(errors, ValidationError{
				FilePath: filePath,
				Path:     path,
				Message:  fmt.Sprintf("duplicate token id %q", id),
			})
		}
		seen[id] = true

		typeStr, _ := obj["type"].(string)
		typ := token.Type(typeStr)
		if !typ.Recognized() {
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Path:       path,
				Message:    fmt.Sprintf("unrecognized token type %q", typeStr),
				Suggestion: "token will produce no output; expected color, dimension, typography or shadow",
			})
			continue
		}

		errors = append(errors, validateValue(typ, obj["value"], filePath, path)...)
		errors = append(errors, validateExtensions(typ, obj["extensions"], filePath, path)...)
	}

	return errors
}

// validateValue checks that a value matches the shape its type declares.
func validateValue(typ token.Type, value any, filePath, path string) []ValidationError {
	var errors []ValidationError

	report := func(message, suggestion string) {
		errors = append(errors, ValidationError{
			FilePath:   filePath,
			Path:       path,
			Message:    message,
			Suggestion: suggestion,
		})
	}

	switch typ {
	case token.TypeColor:
		s, ok := value.(string)
		if !ok {
			report(fmt.Sprintf("color value must be a string, got %T", value), "")
			break
		}
		if _, err := csscolorparser.Parse(s); err != nil {
			report(fmt.Sprintf("unparseable color %q", s), "use a hex, rgb() or named CSS color")
		}

	case token.TypeDimension:
		s, ok := value.(string)
		if !ok {
			report(fmt.Sprintf("dimension value must be a string, got %T", value), "")
			break
		}
		if !strings.HasSuffix(s, "px") {
			report(fmt.Sprintf("dimension %q has no px suffix", s), "the generator will substitute 16")
		}

	case token.TypeTypography:
		if _, ok := value.(map[string]any); !ok {
			report(fmt.Sprintf("typography value must be an object, got %T", value), "")
		}

	case token.TypeShadow:
		layers, ok := value.([]any)
		if !ok {
			if _, isObj := value.(map[string]any); isObj {
				break
			}
			report(fmt.Sprintf("shadow value must be an array of layers, got %T", value), "")
			break
		}
		for i, layer := range layers {
			if _, ok := layer.(map[string]any); !ok {
				report(fmt.Sprintf("shadow layer %d must be an object, got %T", i, layer), "")
			}
		}
	}

	return errors
}

// validateExtensions checks mode/collection side-channel metadata.
func validateExtensions(typ token.Type, value any, filePath, path string) []ValidationError {
	if value == nil {
		return nil
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return []ValidationError{{
			FilePath: filePath,
			Path:     path,
			Message:  fmt.Sprintf("extensions must be an object, got %T", value),
		}}
	}

	var errors []ValidationError

	if collection, present := obj["collection"]; present {
		collObj, ok := collection.(map[string]any)
		if !ok {
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Path:       path,
				Message:    fmt.Sprintf("extensions.collection must be an object, got %T", collection),
				Suggestion: `use {"name": "..."}`,
			})
		} else if _, ok := collObj["name"].(string); !ok {
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Path:       path,
				Message:    "extensions.collection.name must be a string",
			})
		}
	}

	if modes, present := obj["mode"]; present {
		modeObj, ok := modes.(map[string]any)
		if !ok {
			errors = append(errors, ValidationError{
				FilePath: filePath,
				Path:     path,
				Message:  fmt.Sprintf("extensions.mode must be an object, got %T", modes),
			})
		} else {
			// A mode override replaces the whole value, so it must match
			// the token's declared type.
			for name, override := range modeObj {
				errors = append(errors, validateValue(typ, override, filePath, path+".mode."+name)...)
			}
		}
	}

	return errors
}
