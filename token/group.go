/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"
	"regexp"
	"sort"
)

// TypeGroup is the ordered sequence of tokens sharing one type.
type TypeGroup struct {
	Type   Type
	Tokens []*Token
}

// GroupByType partitions tokens by their declared type. Groups appear in
// the order their type is first encountered, and tokens keep their
// original relative order within each group.
func GroupByType(tokens []*Token) []TypeGroup {
	index := make(map[Type]int)
	var groups []TypeGroup

	for _, tok := range tokens {
		i, ok := index[tok.Type]
		if !ok {
			i = len(groups)
			index[tok.Type] = i
			groups = append(groups, TypeGroup{Type: tok.Type})
		}
		groups[i].Tokens = append(groups[i].Tokens, tok)
	}

	return groups
}

// Modes returns the sorted set of distinct mode names present anywhere in
// the collection.
func Modes(tokens []*Token) []string {
	seen := make(map[string]bool)
	for _, tok := range tokens {
		if tok.Extensions == nil {
			continue
		}
		for name := range tok.Extensions.Modes {
			seen[name] = true
		}
	}

	modes := make([]string, 0, len(seen))
	for name := range seen {
		modes = append(modes, name)
	}
	sort.Strings(modes)
	return modes
}

// DefaultCollection is the collection name used for tokens that define
// mode overrides but carry no collection metadata.
const DefaultCollection = "default"

// Collection is the ordered sequence of tokens in one collection, with
// their values replaced by a mode's override values.
type Collection struct {
	Name   string
	Tokens []*Token
}

// ForMode keeps only tokens that define an override for the named mode,
// replaces each one's value with the override, and partitions the result
// by collection name. Collections are returned in sorted name order;
// source tokens are never modified.
func ForMode(tokens []*Token, mode string) []Collection {
	index := make(map[string]int)
	var collections []Collection

	for _, tok := range tokens {
		override, ok := tok.Mode(mode)
		if !ok {
			continue
		}
		name := tok.CollectionName(DefaultCollection)
		i, ok := index[name]
		if !ok {
			i = len(collections)
			index[name] = i
			collections = append(collections, Collection{Name: name})
		}
		collections[i].Tokens = append(collections[i].Tokens, WithOverride(tok, override))
	}

	sort.Slice(collections, func(i, j int) bool {
		return collections[i].Name < collections[j].Name
	})
	return collections
}

// Exclude removes tokens whose ID matches any of the given regular
// expression patterns. An invalid pattern fails the whole build.
func Exclude(tokens []*Token, patterns []string) ([]*Token, error) {
	if len(patterns) == 0 {
		return tokens, nil
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}

	kept := make([]*Token, 0, len(tokens))
	for _, tok := range tokens {
		excluded := false
		for _, re := range compiled {
			if re.MatchString(tok.ID) {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, tok)
		}
	}
	return kept, nil
}
