/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package xaml

import (
	"fmt"
	"path/filepath"
	"strings"

	"bennypowers.dev/milon/token"
)

// DefaultFilename is the name of the base document when none is configured.
const DefaultFilename = "theme.xaml"

// Options configures document generation. The zero value is usable;
// defaults are applied by Generate.
type Options struct {
	// ExcludePatterns are regular expressions matched against token IDs;
	// matching tokens are dropped before conversion. An invalid pattern
	// fails the whole build.
	ExcludePatterns []string

	// Filename is the name of the base document (default DefaultFilename).
	// Mode documents derive their names from it: <base>.<collection>.<mode>.<ext>
	Filename string
}

// OutputFile is one generated document. The caller is responsible for
// writing it to storage.
type OutputFile struct {
	Filename string
	Contents []byte
}

// Result is the output of one conversion pass: the ordered list of
// documents plus the warnings collected while converting.
type Result struct {
	Files       []OutputFile
	Diagnostics Diagnostics
}

const documentHeader = `<?xml version="1.0" encoding="utf-8"?>
<ResourceDictionary xmlns="http://schemas.microsoft.com/dotnet/2021/maui"
                    xmlns:x="http://schemas.microsoft.com/winfx/2009/xaml">`

const documentFooter = `</ResourceDictionary>`

// sectionTitles names the per-type section comments in the base document.
var sectionTitles = map[token.Type]string{
	token.TypeColor:      "Color tokens",
	token.TypeDimension:  "Dimension tokens",
	token.TypeTypography: "Typography tokens",
	token.TypeShadow:     "Shadow tokens",
}

// Generate converts a token collection into XAML ResourceDictionary
// documents: one base document grouped by token type, plus one document
// per mode and collection containing that collection's mode-overridden
// tokens. Generate is a pure function over its inputs; it never touches
// the filesystem, and repeated runs over the same input yield identical
// output.
func Generate(tokens []*token.Token, opts Options) (*Result, error) {
	if opts.Filename == "" {
		opts.Filename = DefaultFilename
	}

	filtered, err := token.Exclude(tokens, opts.ExcludePatterns)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	base := assemble(token.GroupByType(filtered), &result.Diagnostics)
	result.Files = append(result.Files, OutputFile{
		Filename: opts.Filename,
		Contents: base,
	})

	ext := filepath.Ext(opts.Filename)
	stem := strings.TrimSuffix(opts.Filename, ext)

	for _, mode := range token.Modes(filtered) {
		for _, collection := range token.ForMode(filtered, mode) {
			contents := assemble(token.GroupByType(collection.Tokens), &result.Diagnostics)
			result.Files = append(result.Files, OutputFile{
				Filename: fmt.Sprintf("%s.%s.%s%s", stem, collection.Name, mode, ext),
				Contents: contents,
			})
		}
	}

	return result, nil
}

// assemble wraps converted fragments in the document root, with a section
// header comment per type group in encounter order.
func assemble(groups []token.TypeGroup, d *Diagnostics) []byte {
	var sb strings.Builder
	sb.WriteString(documentHeader)
	sb.WriteString("\n")

	for _, group := range groups {
		var lines []string
		for _, tok := range group.Tokens {
			lines = append(lines, Convert(tok, d)...)
		}
		if len(lines) == 0 {
			continue
		}

		title, ok := sectionTitles[group.Type]
		if !ok {
			title = string(group.Type) + " tokens"
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s<!-- %s -->\n", indent, title))
		for _, line := range lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(documentFooter)
	sb.WriteString("\n")
	return []byte(sb.String())
}
