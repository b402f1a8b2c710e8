/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token model for milon.
package token

// Type identifies the shape of a token's value.
type Type string

// Recognized token types. A token carrying any other type string is kept
// in the collection but produces no output fragment.
const (
	TypeColor      Type = "color"
	TypeDimension  Type = "dimension"
	TypeTypography Type = "typography"
	TypeShadow     Type = "shadow"
)

// Recognized reports whether t is one of the closed set of token types
// the converter handles.
func (t Type) Recognized() bool {
	switch t {
	case TypeColor, TypeDimension, TypeTypography, TypeShadow:
		return true
	default:
		return false
	}
}

// Value is the type-dependent payload of a token. The concrete types are
// Color, Dimension, Typography and Shadow; Type determines which one a
// well-formed token carries.
type Value interface {
	isValue()
}

// Color is a color value, usually a hex string, optionally 8-digit with alpha.
type Color string

// Dimension is a numeric value suffixed with a unit (e.g. "16px").
type Dimension string

// Typography is a composite text style value.
type Typography struct {
	// FontFamily is the base font family name.
	FontFamily string `json:"fontFamily"`

	// FontWeight is either a numeric weight (100-900) or a named weight
	// string; the zero value means unspecified.
	FontWeight any `json:"fontWeight"`

	// FontSize is a unit-suffixed dimension string.
	FontSize string `json:"fontSize"`

	// LineHeight is a unit-suffixed dimension string.
	LineHeight string `json:"lineHeight"`

	// LetterSpacing is either a percentage of the font size ("10%") or an
	// absolute pixel value ("1.6px").
	LetterSpacing string `json:"letterSpacing"`

	// TextDecoration is one of underline, line-through, overline, none.
	TextDecoration string `json:"textDecoration"`

	// TextCase is one of uppercase, lowercase, capitalize.
	TextCase string `json:"textCase"`
}

// ShadowLayer is a single layer of a shadow value.
type ShadowLayer struct {
	Color   string `json:"color"`
	Blur    string `json:"blur"`
	Spread  string `json:"spread"`
	OffsetX string `json:"offsetX"`
	OffsetY string `json:"offsetY"`

	// Inset distinguishes inner shadows from drop shadows.
	Inset bool `json:"inset"`
}

// Shadow is an ordered sequence of shadow layers.
type Shadow []ShadowLayer

func (Color) isValue()      {}
func (Dimension) isValue()  {}
func (Typography) isValue() {}
func (Shadow) isValue()     {}

// Extensions carries side-channel metadata exported by the design tool.
type Extensions struct {
	// Modes maps a mode name (e.g. "dark") to a full replacement value for
	// the token. An override replaces the entire value, never a partial merge.
	Modes map[string]Value

	// Collection is the name of the collection this token's modes belong to.
	Collection string
}

// Token is a single named design value from a design-tool export.
// Tokens are immutable inputs: conversion reads them and produces new
// derived records, it never mutates the source collection.
type Token struct {
	// ID is the token's stable identifier, unique within the collection
	// (e.g. "color-primary" or "heading.1").
	ID string

	// Type determines the shape of Value.
	Type Type

	// Value is the token's payload; nil for unrecognized types.
	Value Value

	// Extensions is optional mode/collection metadata.
	Extensions *Extensions
}

// Mode returns the override value for the named mode, if the token
// defines one.
func (t *Token) Mode(name string) (Value, bool) {
	if t.Extensions == nil {
		return nil, false
	}
	v, ok := t.Extensions.Modes[name]
	return v, ok
}

// CollectionName returns the token's collection name, or fallback when
// the export carries no collection metadata.
func (t *Token) CollectionName(fallback string) string {
	if t.Extensions != nil && t.Extensions.Collection != "" {
		return t.Extensions.Collection
	}
	return fallback
}

// WithOverride returns a shallow copy of tok with its value replaced.
// The original token is not modified.
func WithOverride(tok *Token, value Value) *Token {
	clone := *tok
	clone.Value = value
	return &clone
}
