package config

import "testing"

func TestApplyArgsPositionals(t *testing.T) {
	var cfg Config
	if err := cfg.ApplyArgs([]string{"sample.webp", "out"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source != "sample.webp" || cfg.TargetDir != "out" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestApplyArgsRejectsExtraPositionals(t *testing.T) {
	var cfg Config
	if err := cfg.ApplyArgs([]string{"a", "b", "c"}); err == nil {
		t.Fatalf("expected error for three positionals")
	}
}

func TestApplyArgsBothOptional(t *testing.T) {
	var cfg Config
	if err := cfg.ApplyArgs(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source != "" || cfg.TargetDir != "" {
		t.Fatalf("expected empty paths, got %+v", cfg)
	}
	if cfg.LogFile != DefaultLogFile {
		t.Fatalf("expected default log file, got %q", cfg.LogFile)
	}
}

func TestApplyArgsEnvFallbacks(t *testing.T) {
	t.Setenv("WEBP2PNG_SOURCE", "/photos")
	t.Setenv("WEBP2PNG_TARGET", "/out")
	t.Setenv("WEBP2PNG_VERBOSE", "yes")

	var cfg Config
	if err := cfg.ApplyArgs(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source != "/photos" || cfg.TargetDir != "/out" {
		t.Fatalf("env fallbacks not applied: %+v", cfg)
	}
	if !cfg.Verbose {
		t.Fatalf("expected verbose from env")
	}
}

func TestApplyArgsPositionalsBeatEnv(t *testing.T) {
	t.Setenv("WEBP2PNG_SOURCE", "/photos")

	var cfg Config
	if err := cfg.ApplyArgs([]string{"other.webp"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source != "other.webp" {
		t.Fatalf("positional should win over env, got %q", cfg.Source)
	}
}
