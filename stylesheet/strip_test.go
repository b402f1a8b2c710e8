/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/milon/stylesheet"
)

func TestStripBlocks(t *testing.T) {
	t.Run("removes a multi-line block", func(t *testing.T) {
		input := `.card {
  color: red;
}

effect-styles(
  "card-shadow",
  (0, 4, 8, rgba(0, 0, 0, 0.25))
)

.button {
  color: blue;
}
`
		want := `.card {
  color: red;
}


.button {
  color: blue;
}
`
		got := stylesheet.StripBlocks([]byte(input), "effect-styles")
		assert.Equal(t, want, string(got))
	})

	t.Run("removes every reserved block", func(t *testing.T) {
		input := `effect-styles("a", (1))
keep: this;
effect-styles(
  "b",
  (2)
)
also: kept;
`
		want := `keep: this;
also: kept;
`
		got := stylesheet.StripBlocks([]byte(input), "effect-styles")
		assert.Equal(t, want, string(got))
	})

	t.Run("handles nested parentheses", func(t *testing.T) {
		input := `effect-styles(
  "shadow",
  rgba(0, 0, 0, calc((1 + 2) * 0.1))
)
rest: here;
`
		got := stylesheet.StripBlocks([]byte(input), "effect-styles")
		assert.Equal(t, "rest: here;\n", string(got))
	})

	t.Run("indented declarations match", func(t *testing.T) {
		input := "  effect-styles(\n    (1)\n  )\nkept\n"
		got := stylesheet.StripBlocks([]byte(input), "effect-styles")
		assert.Equal(t, "kept\n", string(got))
	})

	t.Run("similar names are kept", func(t *testing.T) {
		input := `effect-styles-extra(
  (1)
)
`
		got := stylesheet.StripBlocks([]byte(input), "effect-styles")
		assert.Equal(t, input, string(got))
	})

	t.Run("no reserved blocks leaves content unchanged", func(t *testing.T) {
		input := ".a { color: red; }\n\n.b { color: blue; }\n"
		got := stylesheet.StripBlocks([]byte(input), "effect-styles")
		assert.Equal(t, input, string(got))
	})

	t.Run("empty group falls back to default", func(t *testing.T) {
		input := stylesheet.DefaultReservedGroup + "(\n  (1)\n)\nkept\n"
		got := stylesheet.StripBlocks([]byte(input), "")
		assert.Equal(t, "kept\n", string(got))
	})

	t.Run("unbalanced block consumes to end of file", func(t *testing.T) {
		input := "before\neffect-styles(\n  never closed\n"
		got := stylesheet.StripBlocks([]byte(input), "effect-styles")
		assert.Equal(t, "before", string(got))
	})
}
