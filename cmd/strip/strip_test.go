/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package strip_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/milon/cmd/strip"
)

func TestStrip_InPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.scss")

	input := `.card { color: red; }

effect-styles(
  "card-shadow",
  (0, 4, 8)
)

.button { color: blue; }
`
	require.NoError(t, os.WriteFile(path, []byte(input), 0644))

	strip.Cmd.SetArgs([]string{path})
	require.NoError(t, strip.Cmd.Execute())

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `.card { color: red; }


.button { color: blue; }
`
	assert.Equal(t, want, string(got))
}

func TestStrip_MissingFile(t *testing.T) {
	strip.Cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.scss")})
	assert.Error(t, strip.Cmd.Execute())
}
