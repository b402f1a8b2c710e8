/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package xaml converts design tokens to XAML ResourceDictionary documents.
package xaml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Warning records a malformed leaf value that was replaced with a
// documented fallback. Warnings never abort a build; they are collected
// and returned alongside the output so the conversion stays a pure
// function.
type Warning struct {
	// TokenID is the token the warning applies to, when known.
	TokenID string

	// Message describes what was malformed and what was substituted.
	Message string
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.TokenID == "" {
		return w.Message
	}
	return w.TokenID + ": " + w.Message
}

// Diagnostics collects the warnings produced by one conversion pass.
type Diagnostics struct {
	Warnings []Warning
}

// add records a formatter warning against a token.
func (d *Diagnostics) add(tokenID string, w *Warning) {
	if w == nil {
		return
	}
	w.TokenID = tokenID
	d.Warnings = append(d.Warnings, *w)
}

func warnf(format string, args ...any) *Warning {
	return &Warning{Message: fmt.Sprintf(format, args...)}
}

// FallbackDimension is substituted for malformed dimension values.
const FallbackDimension = "16"

// FallbackFontWeight is substituted for unrecognized font weights.
const FallbackFontWeight = "Regular"

// FormatDimension strips the pixel unit from a dimension value and
// returns the bare number. Malformed input yields FallbackDimension and
// a warning.
func FormatDimension(v string) (string, *Warning) {
	n, ok := strings.CutSuffix(v, "px")
	if !ok {
		return FallbackDimension, warnf("dimension %q has no px suffix; using %s", v, FallbackDimension)
	}
	if _, err := strconv.ParseFloat(n, 64); err != nil {
		return FallbackDimension, warnf("dimension %q is not numeric; using %s", v, FallbackDimension)
	}
	return n, nil
}

// FormatLetterSpacing converts a letter-spacing value into a per-mille-of-
// font-size integer. Percentages convert directly; pixel values convert
// relative to fontSizePx. Anything else yields "0" and a warning.
func FormatLetterSpacing(v string, fontSizePx float64) (string, *Warning) {
	if fontSizePx <= 0 {
		return "0", warnf("letter spacing %q needs a positive font size", v)
	}

	if pct, ok := strings.CutSuffix(v, "%"); ok {
		n, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return "0", warnf("letter spacing %q is not numeric; using 0", v)
		}
		return strconv.Itoa(int(math.Round(n / 100 * 1000))), nil
	}

	if px, ok := strings.CutSuffix(v, "px"); ok {
		n, err := strconv.ParseFloat(px, 64)
		if err != nil {
			return "0", warnf("letter spacing %q is not numeric; using 0", v)
		}
		return strconv.Itoa(int(math.Round(n / fontSizePx * 1000))), nil
	}

	return "0", warnf("letter spacing %q has no %% or px suffix; using 0", v)
}

// fontWeightNames maps numeric weights to XAML font weight names.
var fontWeightNames = map[int]string{
	100: "Thin",
	200: "ExtraLight",
	300: "Light",
	400: "Regular",
	500: "Medium",
	600: "SemiBold",
	700: "Bold",
	800: "ExtraBold",
	900: "Black",
}

// FormatFontWeight maps a numeric (100-900) or named font weight to its
// XAML weight name. Unrecognized input yields FallbackFontWeight and a
// warning.
func FormatFontWeight(w any) (string, *Warning) {
	switch v := w.(type) {
	case int:
		if name, ok := fontWeightNames[v]; ok {
			return name, nil
		}
	case float64:
		if name, ok := fontWeightNames[int(v)]; ok && v == math.Trunc(v) {
			return name, nil
		}
	case string:
		normalized := strings.ToLower(strings.Join(strings.Fields(v), ""))
		for _, name := range fontWeightNames {
			if strings.ToLower(name) == normalized {
				return name, nil
			}
		}
	}
	return FallbackFontWeight, warnf("unrecognized font weight %v; using %s", w, FallbackFontWeight)
}

// FormatTextCase maps a text-case value to a XAML text transform.
// Unrecognized input yields "None" and a warning.
func FormatTextCase(c string) (string, *Warning) {
	switch strings.ToUpper(strings.TrimSpace(c)) {
	case "UPPERCASE":
		return "Upper", nil
	case "LOWERCASE":
		return "Lower", nil
	case "CAPITALIZE":
		return "Capitalize", nil
	default:
		return "None", warnf("unrecognized text case %q; using None", c)
	}
}

// FormatTextDecoration maps a text-decoration value to a XAML decoration.
// Unrecognized input yields "None" and a warning.
func FormatTextDecoration(d string) (string, *Warning) {
	switch strings.ToUpper(strings.TrimSpace(d)) {
	case "UNDERLINE":
		return "Underline", nil
	case "LINE-THROUGH":
		return "Strikethrough", nil
	case "OVERLINE":
		return "Overline", nil
	case "NONE":
		return "None", nil
	default:
		return "None", warnf("unrecognized text decoration %q; using None", d)
	}
}

// FormatColor rearranges an 8-digit #RRGGBBAA hex color into XAML's
// #AARRGGBB channel order. Any other form passes through unchanged.
func FormatColor(hex string) string {
	if len(hex) != 9 || hex[0] != '#' || !isHexDigits(hex[1:]) {
		return hex
	}
	return "#" + hex[7:9] + hex[1:7]
}

func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9',
			r >= 'a' && r <= 'f',
			r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// EscapeXML escapes special XML characters.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
