/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"testing"

	"bennypowers.dev/milon/token"
)

func TestType_Recognized(t *testing.T) {
	tests := []struct {
		typ      token.Type
		expected bool
	}{
		{token.TypeColor, true},
		{token.TypeDimension, true},
		{token.TypeTypography, true},
		{token.TypeShadow, true},
		{token.Type("gradient"), false},
		{token.Type(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := tt.typ.Recognized(); got != tt.expected {
				t.Errorf("Type(%q).Recognized() = %v, want %v", tt.typ, got, tt.expected)
			}
		})
	}
}

func TestToken_Mode(t *testing.T) {
	tok := &token.Token{
		ID:    "color-primary",
		Type:  token.TypeColor,
		Value: token.Color("#3366FF"),
		Extensions: &token.Extensions{
			Modes: map[string]token.Value{
				"dark": token.Color("#99BBFF"),
			},
		},
	}

	t.Run("defined mode", func(t *testing.T) {
		v, ok := tok.Mode("dark")
		if !ok {
			t.Fatal("expected dark mode override")
		}
		if v != token.Color("#99BBFF") {
			t.Errorf("Mode(dark) = %v, want #99BBFF", v)
		}
	})

	t.Run("undefined mode", func(t *testing.T) {
		if _, ok := tok.Mode("sepia"); ok {
			t.Error("expected no sepia mode override")
		}
	})

	t.Run("no extensions", func(t *testing.T) {
		bare := &token.Token{ID: "spacing-md", Type: token.TypeDimension}
		if _, ok := bare.Mode("dark"); ok {
			t.Error("expected no mode override on token without extensions")
		}
	})
}

func TestToken_CollectionName(t *testing.T) {
	t.Run("named collection", func(t *testing.T) {
		tok := &token.Token{Extensions: &token.Extensions{Collection: "Base"}}
		if got := tok.CollectionName("default"); got != "Base" {
			t.Errorf("CollectionName() = %q, want %q", got, "Base")
		}
	})

	t.Run("missing collection falls back", func(t *testing.T) {
		tok := &token.Token{}
		if got := tok.CollectionName("default"); got != "default" {
			t.Errorf("CollectionName() = %q, want %q", got, "default")
		}
	})
}

func TestWithOverride(t *testing.T) {
	original := &token.Token{
		ID:    "color-primary",
		Type:  token.TypeColor,
		Value: token.Color("#3366FF"),
	}

	derived := token.WithOverride(original, token.Color("#000000"))

	if derived.Value != token.Color("#000000") {
		t.Errorf("derived.Value = %v, want #000000", derived.Value)
	}
	if derived.ID != original.ID || derived.Type != original.Type {
		t.Error("WithOverride must preserve identity fields")
	}
	if original.Value != token.Color("#3366FF") {
		t.Errorf("original token was modified: %v", original.Value)
	}
	if derived == original {
		t.Error("WithOverride must return a new token")
	}
}
