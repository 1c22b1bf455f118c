package config

import (
	"os"
	"path/filepath"
	"testing"
)

const minimalYAML = `
environment: test
meta:
  access_token: tok
  account_id: "123"
shopify:
  shop_domain: example.myshopify.com
  access_token: shpat
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMinimal(t *testing.T) {
	c, err := Load(writeConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Server.Port != 8080 {
		t.Fatalf("default port = %d, want 8080", c.Server.Port)
	}
	if !c.MetaEnabled() {
		t.Fatalf("meta should be enabled")
	}
	if c.GoogleEnabled() {
		t.Fatalf("google should be disabled without credentials")
	}
}

func TestLoadRejectsMissingShopify(t *testing.T) {
	body := `
environment: test
meta:
  access_token: tok
  account_id: "123"
`
	if _, err := Load(writeConfig(t, body)); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadWithEnvOverride(t *testing.T) {
	t.Setenv("GOOGLE_DEVELOPER_TOKEN", "dev")
	t.Setenv("GOOGLE_ACCESS_TOKEN", "bearer")
	t.Setenv("GOOGLE_CUSTOMER_ID", "999")

	c, err := LoadWithEnv(writeConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.GoogleEnabled() {
		t.Fatalf("google should be enabled via env")
	}
}
