/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config_test

import (
	"testing"

	"bennypowers.dev/milon/config"
	"bennypowers.dev/milon/internal/mapfs"
	"bennypowers.dev/milon/stylesheet"
	"bennypowers.dev/milon/xaml"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, ".")
	}
	if cfg.EffectiveFilename() != xaml.DefaultFilename {
		t.Errorf("EffectiveFilename() = %q, want %q", cfg.EffectiveFilename(), xaml.DefaultFilename)
	}
	if cfg.ReservedGroup != stylesheet.DefaultReservedGroup {
		t.Errorf("ReservedGroup = %q, want %q", cfg.ReservedGroup, stylesheet.DefaultReservedGroup)
	}
}

func TestLoad_YAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/milon.yaml", `
files:
  - tokens/*.json
excludePatterns:
  - "^internal-"
outputDir: Resources/Styles
filename: Tokens.xaml
reservedGroup: effect-styles
`, 0644)

	cfg, err := config.Load(mfs, "/project")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() = nil, want config")
	}

	if len(cfg.Files) != 1 || cfg.Files[0] != "tokens/*.json" {
		t.Errorf("Files = %v", cfg.Files)
	}
	if cfg.OutputDir != "Resources/Styles" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.EffectiveFilename() != "Tokens.xaml" {
		t.Errorf("EffectiveFilename() = %q", cfg.EffectiveFilename())
	}

	opts := cfg.GenerateOptions()
	if opts.Filename != "Tokens.xaml" || len(opts.ExcludePatterns) != 1 {
		t.Errorf("GenerateOptions() = %+v", opts)
	}
}

func TestLoad_JSON(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/milon.json", `{
		"files": ["tokens.json"],
		"outputFilename": "Theme.xaml"
	}`, 0644)

	cfg, err := config.Load(mfs, "/project")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() = nil, want config")
	}

	t.Run("outputFilename alias", func(t *testing.T) {
		if cfg.EffectiveFilename() != "Theme.xaml" {
			t.Errorf("EffectiveFilename() = %q, want Theme.xaml", cfg.EffectiveFilename())
		}
	})
}

func TestLoad_Missing(t *testing.T) {
	mfs := mapfs.New()

	cfg, err := config.Load(mfs, "/project")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != nil {
		t.Errorf("Load() = %+v, want nil for missing config", cfg)
	}

	if got := config.LoadOrDefault(mfs, "/project"); got == nil {
		t.Error("LoadOrDefault() = nil, want defaults")
	}
}

func TestLoad_InvalidPattern(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/milon.yaml", `
excludePatterns:
  - "[unclosed"
`, 0644)

	if _, err := config.Load(mfs, "/project"); err == nil {
		t.Error("expected error for invalid exclude pattern")
	}
}

func TestExpandFiles(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tokens/base.json", "[]", 0644)
	mfs.AddFile("/project/tokens/brand.json", "[]", 0644)
	mfs.AddFile("/project/tokens/readme.md", "#", 0644)

	t.Run("glob pattern", func(t *testing.T) {
		cfg := &config.Config{Files: []string{"tokens/*.json"}}
		files, err := cfg.ExpandFiles(mfs, "/project")
		if err != nil {
			t.Fatalf("ExpandFiles() error = %v", err)
		}
		if len(files) != 2 {
			t.Errorf("ExpandFiles() = %v, want 2 json files", files)
		}
		for _, f := range files {
			if f == "/project/tokens/readme.md" {
				t.Error("glob must not match readme.md")
			}
		}
	})

	t.Run("plain path passes through", func(t *testing.T) {
		cfg := &config.Config{Files: []string{"tokens/base.json"}}
		files, err := cfg.ExpandFiles(mfs, "/project")
		if err != nil {
			t.Fatalf("ExpandFiles() error = %v", err)
		}
		if len(files) != 1 || files[0] != "/project/tokens/base.json" {
			t.Errorf("ExpandFiles() = %v", files)
		}
	})
}
