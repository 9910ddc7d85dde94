package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FallbackYear != 2025 {
		t.Fatalf("FallbackYear=%d", cfg.FallbackYear)
	}
	if cfg.SampleLimit != 20 {
		t.Fatalf("SampleLimit=%d", cfg.SampleLimit)
	}
	if cfg.InputType != "csv" {
		t.Fatalf("InputType=%q", cfg.InputType)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FALLBACK_YEAR", "2024")
	t.Setenv("OUTPUT_DIR", "/tmp/dict")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FallbackYear != 2024 {
		t.Fatalf("FallbackYear=%d", cfg.FallbackYear)
	}
	if cfg.OutputDir != "/tmp/dict" {
		t.Fatalf("OutputDir=%q", cfg.OutputDir)
	}
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("FALLBACK_YEAR", "not-a-year")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FallbackYear != 2025 {
		t.Fatalf("FallbackYear=%d", cfg.FallbackYear)
	}
}
