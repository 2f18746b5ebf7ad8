package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "PARENT_ELEMENTS", "DOCUMENT_TTL", "BATCH_WORKERS"} {
		t.Setenv(key, "")
	}
	cfg := Load()

	if cfg.Port != "8085" {
		t.Errorf("expected default port 8085, got %s", cfg.Port)
	}
	if !reflect.DeepEqual(cfg.DefaultParents, []string{"header", "values"}) {
		t.Errorf("expected default parents, got %v", cfg.DefaultParents)
	}
	if cfg.DocumentTTL != time.Hour {
		t.Errorf("expected 1h TTL, got %v", cfg.DocumentTTL)
	}
	if cfg.BatchWorkers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.BatchWorkers)
	}
}

func TestLoad_ParentOverride(t *testing.T) {
	t.Setenv("PARENT_ELEMENTS", " header, body , body ,")
	cfg := Load()
	if !reflect.DeepEqual(cfg.DefaultParents, []string{"header", "body"}) {
		t.Errorf("expected trimmed deduplicated parents, got %v", cfg.DefaultParents)
	}
}

func TestValidate_RequiresAPIKey(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing api key")
	}
	cfg.APIKey = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	content := `presets:
  invoice:
    parents: [header, values]
    remove_keys: [meta]
    flatten:
      nested_key: Name
      value_key: Value
    rename:
      table:
        price: cost
      casing: capitalize
  raw:
    parents: [body]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(presets))
	}

	invoice := presets["invoice"]
	if !reflect.DeepEqual(invoice.RemoveKeys, []string{"meta"}) {
		t.Errorf("expected remove_keys [meta], got %v", invoice.RemoveKeys)
	}
	if invoice.Flatten == nil || invoice.Flatten.NestedKey != "Name" {
		t.Errorf("expected flatten nested_key Name, got %+v", invoice.Flatten)
	}
	if invoice.Rename == nil || invoice.Rename.Table["price"] != "cost" {
		t.Errorf("expected rename table, got %+v", invoice.Rename)
	}

	raw := presets["raw"]
	if raw.Flatten != nil || raw.Rename != nil {
		t.Errorf("expected absent sections to stay nil, got %+v", raw)
	}
}

func TestLoadPresets_Missing(t *testing.T) {
	if _, err := LoadPresets(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadPresets_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("presets: {}\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadPresets(path); err == nil {
		t.Error("expected error for empty preset file")
	}
}

func TestDemoPreset(t *testing.T) {
	p := DemoPreset()
	if !reflect.DeepEqual(p.Parents, []string{"header", "values"}) {
		t.Errorf("expected header/values parents, got %v", p.Parents)
	}
	if p.Rename == nil || p.Rename.Casing != "capitalize" {
		t.Errorf("expected capitalize casing, got %+v", p.Rename)
	}
}
