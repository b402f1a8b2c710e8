/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/milon/internal/mapfs"
	"bennypowers.dev/milon/parser"
	"bennypowers.dev/milon/token"
)

func TestParse_JSON(t *testing.T) {
	data := []byte(`[
		{
			"id": "color-primary",
			"type": "color",
			"value": "#3366FF",
			"extensions": {
				"collection": { "name": "Base" },
				"mode": { "dark": "#99BBFF" }
			}
		},
		{ "id": "spacing-md", "type": "dimension", "value": "16px" }
	]`)

	tokens, err := parser.New().Parse(data)
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	primary := tokens[0]
	assert.Equal(t, "color-primary", primary.ID)
	assert.Equal(t, token.TypeColor, primary.Type)
	assert.Equal(t, token.Color("#3366FF"), primary.Value)
	require.NotNil(t, primary.Extensions)
	assert.Equal(t, "Base", primary.Extensions.Collection)
	assert.Equal(t, token.Color("#99BBFF"), primary.Extensions.Modes["dark"])

	spacing := tokens[1]
	assert.Equal(t, token.TypeDimension, spacing.Type)
	assert.Equal(t, token.Dimension("16px"), spacing.Value)
	assert.Nil(t, spacing.Extensions)
}

func TestParse_JSONComments(t *testing.T) {
	data := []byte(`[
		// exported from the design tool
		{ "id": "color-primary", "type": "color", "value": "#3366FF" }
	]`)

	tokens, err := parser.New().Parse(data)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "color-primary", tokens[0].ID)
}

func TestParse_YAML(t *testing.T) {
	data := []byte(`
- id: color-primary
  type: color
  value: "#3366FF"
- id: heading-1
  type: typography
  value:
    fontFamily: Inter
    fontWeight: 700
    fontSize: 32px
`)

	tokens, err := parser.New().Parse(data)
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	heading, ok := tokens[1].Value.(token.Typography)
	require.True(t, ok, "expected Typography value, got %T", tokens[1].Value)
	assert.Equal(t, "Inter", heading.FontFamily)
	assert.Equal(t, 700, heading.FontWeight)
	assert.Equal(t, "32px", heading.FontSize)
}

func TestParse_Typography(t *testing.T) {
	data := []byte(`[{
		"id": "heading-1",
		"type": "typography",
		"value": {
			"fontFamily": "Inter",
			"fontWeight": "bold",
			"fontSize": "32px",
			"lineHeight": "40px",
			"letterSpacing": "10%",
			"textDecoration": "underline",
			"textCase": "uppercase"
		}
	}]`)

	tokens, err := parser.New().Parse(data)
	require.NoError(t, err)

	typ, ok := tokens[0].Value.(token.Typography)
	require.True(t, ok)
	assert.Equal(t, "bold", typ.FontWeight)
	assert.Equal(t, "10%", typ.LetterSpacing)
	assert.Equal(t, "underline", typ.TextDecoration)
	assert.Equal(t, "uppercase", typ.TextCase)
}

func TestParse_Shadow(t *testing.T) {
	t.Run("array of layers", func(t *testing.T) {
		data := []byte(`[{
			"id": "card-shadow",
			"type": "shadow",
			"value": [
				{ "color": "#00000040", "blur": "8px", "spread": "2px", "offsetX": "0px", "offsetY": "4px" },
				{ "color": "#00000080", "blur": "2px", "spread": "0px", "offsetX": "0px", "offsetY": "1px", "inset": true }
			]
		}]`)

		tokens, err := parser.New().Parse(data)
		require.NoError(t, err)

		shadow, ok := tokens[0].Value.(token.Shadow)
		require.True(t, ok)
		require.Len(t, shadow, 2)
		assert.False(t, shadow[0].Inset)
		assert.True(t, shadow[1].Inset)
		assert.Equal(t, "8px", shadow[0].Blur)
	})

	t.Run("bare object becomes single layer", func(t *testing.T) {
		data := []byte(`[{
			"id": "card-shadow",
			"type": "shadow",
			"value": { "color": "#00000040", "blur": "8px", "spread": "0px", "offsetX": "0px", "offsetY": "4px" }
		}]`)

		tokens, err := parser.New().Parse(data)
		require.NoError(t, err)

		shadow, ok := tokens[0].Value.(token.Shadow)
		require.True(t, ok)
		require.Len(t, shadow, 1)
	})
}

func TestParse_UnrecognizedType(t *testing.T) {
	data := []byte(`[{ "id": "gradient-hero", "type": "gradient", "value": { "stops": [] } }]`)

	tokens, err := parser.New().Parse(data)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Nil(t, tokens[0].Value)
}

func TestParse_StructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "non-array root", data: `{ "id": "a" }`},
		{name: "non-object entry", data: `["just-a-string"]`},
		{name: "missing id", data: `[{ "type": "color", "value": "#FFF" }]`},
		{name: "duplicate id", data: `[{"id":"a","type":"color","value":"#FFF"},{"id":"a","type":"color","value":"#000"}]`},
		{name: "color value not a string", data: `[{ "id": "a", "type": "color", "value": 42 }]`},
		{name: "typography value not an object", data: `[{ "id": "a", "type": "typography", "value": "Inter" }]`},
		{name: "shadow value not layers", data: `[{ "id": "a", "type": "shadow", "value": "8px" }]`},
		{name: "extensions not an object", data: `[{ "id": "a", "type": "color", "value": "#FFF", "extensions": [] }]`},
		{name: "mode override wrong shape", data: `[{ "id": "a", "type": "color", "value": "#FFF", "extensions": { "mode": { "dark": 7 } } }]`},
		{name: "malformed json", data: `[{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := parser.New().Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, tokens, "no partial collection on structural error")
		})
	}
}

func TestParseFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/test/tokens.json", `[{ "id": "color-primary", "type": "color", "value": "#3366FF" }]`, 0644)

	tokens, err := parser.New().ParseFile(mfs, "/test/tokens.json")
	require.NoError(t, err)
	require.Len(t, tokens, 1)

	t.Run("missing file", func(t *testing.T) {
		_, err := parser.New().ParseFile(mfs, "/test/missing.json")
		require.Error(t, err)
	})

	t.Run("parse error includes path", func(t *testing.T) {
		mfs.AddFile("/test/bad.json", `{}`, 0644)
		_, err := parser.New().ParseFile(mfs, "/test/bad.json")
		require.ErrorContains(t, err, "/test/bad.json")
	})
}
