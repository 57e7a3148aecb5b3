package pagination

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.PageSize != 20 || cfg.MaxSize != 100 {
		t.Fatalf("DefaultConfig=%+v", cfg)
	}
}

func TestLoadFromEnv_defaults(t *testing.T) {
	cfg := LoadFromEnv()
	if cfg.PageSize != 20 || cfg.MaxSize != 100 {
		t.Fatalf("LoadFromEnv=%+v", cfg)
	}
}

func TestLoadFromEnv_override(t *testing.T) {
	t.Setenv("FEED_PAGE_SIZE", "50")
	t.Setenv("FEED_PAGE_MAX", "60")

	cfg := LoadFromEnv()
	if cfg.PageSize != 50 || cfg.MaxSize != 60 {
		t.Fatalf("LoadFromEnv=%+v", cfg)
	}
}

func TestLoadFromEnv_capped(t *testing.T) {
	t.Setenv("FEED_PAGE_SIZE", "500")

	cfg := LoadFromEnv()
	if cfg.PageSize != cfg.MaxSize {
		t.Fatalf("PageSize=%d not capped to MaxSize=%d", cfg.PageSize, cfg.MaxSize)
	}
}

func TestLoadFromEnv_invalid(t *testing.T) {
	t.Setenv("FEED_PAGE_SIZE", "zero")
	t.Setenv("FEED_PAGE_MAX", "-1")

	cfg := LoadFromEnv()
	if cfg.PageSize != 20 || cfg.MaxSize != 100 {
		t.Fatalf("LoadFromEnv=%+v, want defaults on invalid values", cfg)
	}
}
