package config

import "testing"

func TestBootstrapDefaults(t *testing.T) {
	c := BootstrapConfig()
	if c.Run.TimeoutSeconds != 60 {
		t.Fatalf("timeout default %d", c.Run.TimeoutSeconds)
	}
	if c.Batch.Workers != 8 {
		t.Fatalf("workers default %d", c.Batch.Workers)
	}
	if c.PreserveQuotes {
		t.Fatal("preserve_quotes should default off")
	}
}

func TestOverlay(t *testing.T) {
	base := BootstrapConfig()
	base.Variables["A"] = "base"
	base.Variables["B"] = "base"

	out, err := base.Overlay(map[string]string{"B": "override", "C": "new"})
	if err != nil {
		t.Fatalf("overlay: %v", err)
	}
	if out.Variables["A"] != "base" || out.Variables["B"] != "override" || out.Variables["C"] != "new" {
		t.Fatalf("got %v", out.Variables)
	}

	// base must stay untouched
	if base.Variables["B"] != "base" {
		t.Fatalf("overlay mutated base: %v", base.Variables)
	}
	if _, ok := base.Variables["C"]; ok {
		t.Fatalf("overlay mutated base: %v", base.Variables)
	}
}

func TestLookupPrefersConfiguredVariables(t *testing.T) {
	t.Setenv("CMDRUN_CONF_TEST", "env")
	c := BootstrapConfig()
	c.Variables["CMDRUN_CONF_TEST"] = "file"

	if v, ok := c.Lookup()("CMDRUN_CONF_TEST"); !ok || v != "file" {
		t.Fatalf("got %q %v", v, ok)
	}
	if v, ok := c.Lookup()("CMDRUN_CONF_TEST_ENV_ONLY"); ok {
		t.Fatalf("unexpected hit %q", v)
	}
}
