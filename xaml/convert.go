/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package xaml

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/milon/token"
)

const indent = "    "

// Convert produces the markup lines for one token, dispatching on its
// declared type. Tokens of unrecognized type produce no output.
// Malformed leaf values are replaced with documented fallbacks and
// recorded in d.
func Convert(tok *token.Token, d *Diagnostics) []string {
	switch v := tok.Value.(type) {
	case token.Color:
		return []string{fmt.Sprintf("%s<Color x:Key=%q>%s</Color>",
			indent, EscapeXML(tok.ID), EscapeXML(FormatColor(string(v))))}

	case token.Dimension:
		n, w := FormatDimension(string(v))
		d.add(tok.ID, w)
		return []string{fmt.Sprintf("%s<x:Double x:Key=%q>%s</x:Double>",
			indent, EscapeXML(tok.ID), n)}

	case token.Typography:
		return convertTypography(tok.ID, v, d)

	case token.Shadow:
		return convertShadow(tok.ID, v, d)

	default:
		return nil
	}
}

// convertTypography renders a typography token as a Style block with one
// setter per attribute present in the value.
func convertTypography(id string, v token.Typography, d *Diagnostics) []string {
	lines := []string{fmt.Sprintf("%s<Style x:Key=%q TargetType=\"Label\">", indent, EscapeXML(id))}

	setter := func(property, value string) {
		lines = append(lines, fmt.Sprintf("%s%s<Setter Property=%q Value=%q />",
			indent, indent, property, EscapeXML(value)))
	}

	// Synthesize a per-weight font family name (e.g. "Inter-Bold") so the
	// consuming app can bundle one font file per weight.
	weight := FallbackFontWeight
	if v.FontWeight != nil {
		var w *Warning
		weight, w = FormatFontWeight(v.FontWeight)
		d.add(id, w)
	}
	if v.FontFamily != "" {
		setter("FontFamily", v.FontFamily+"-"+weight)
	}

	fontSize := FallbackDimension
	if v.FontSize != "" {
		var w *Warning
		fontSize, w = FormatDimension(v.FontSize)
		d.add(id, w)
		setter("FontSize", fontSize)
	}

	if v.LineHeight != "" {
		n, w := FormatDimension(v.LineHeight)
		d.add(id, w)
		setter("LineHeight", n)
	}

	if v.LetterSpacing != "" {
		fontSizePx, err := strconv.ParseFloat(fontSize, 64)
		if err != nil {
			fontSizePx = 16
		}
		spacing, w := FormatLetterSpacing(v.LetterSpacing, fontSizePx)
		d.add(id, w)
		setter("CharacterSpacing", spacing)
	}

	if v.TextDecoration != "" {
		dec, w := FormatTextDecoration(v.TextDecoration)
		d.add(id, w)
		setter("TextDecorations", dec)
	}

	if v.TextCase != "" {
		tc, w := FormatTextCase(v.TextCase)
		d.add(id, w)
		setter("TextTransform", tc)
	}

	return append(lines, indent+"</Style>")
}

// convertShadow renders one Shadow element per layer. Multi-layer shadows
// get a 1-based index suffix on their keys; a single layer uses the bare
// token id.
func convertShadow(id string, layers token.Shadow, d *Diagnostics) []string {
	var lines []string

	for i, layer := range layers {
		key := id
		if len(layers) > 1 {
			key = fmt.Sprintf("%s-%d", id, i+1)
		}

		spread, w := FormatDimension(layer.Spread)
		d.add(id, w)
		blur, w := FormatDimension(layer.Blur)
		d.add(id, w)
		offsetX, w := FormatDimension(layer.OffsetX)
		d.add(id, w)
		offsetY, w := FormatDimension(layer.OffsetY)
		d.add(id, w)
		brush, w := shadowBrush(layer.Color)
		d.add(id, w)

		if layer.Inset {
			lines = append(lines, fmt.Sprintf(
				"%s<!-- %s: inset shadow; clip the effect with a border inset by %s -->",
				indent, key, spread))
		} else {
			lines = append(lines, fmt.Sprintf(
				"%s<!-- %s: drop shadow; apply to a backing frame with a margin of %s -->",
				indent, key, spread))
		}
		lines = append(lines, fmt.Sprintf(
			"%s<Shadow x:Key=%q Brush=%q Offset=\"%s,%s\" Radius=%q />",
			indent, EscapeXML(key), brush, offsetX, offsetY, blur))
	}

	return lines
}

// shadowBrush normalizes a shadow color to a XAML hex color. Hex values
// go through FormatColor; anything else (rgba(), named colors) is parsed
// as a CSS color and emitted as #AARRGGBB.
func shadowBrush(v string) (string, *Warning) {
	if len(v) > 0 && v[0] == '#' {
		return FormatColor(v), nil
	}

	c, err := csscolorparser.Parse(v)
	if err != nil {
		return "#FF000000", warnf("unparseable shadow color %q; using #FF000000", v)
	}

	channel := func(f float64) uint8 {
		return uint8(math.Round(math.Min(math.Max(f, 0), 1) * 255))
	}
	return fmt.Sprintf("#%02X%02X%02X%02X",
		channel(c.A), channel(c.R), channel(c.G), channel(c.B)), nil
}
