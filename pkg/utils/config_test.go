package utils

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	// No .env in the test directory; defaults apply.
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if config.App.Name != "seat-booking" {
		t.Fatalf("unexpected default app name %q", config.App.Name)
	}
	if config.Store.Backend != StoreBackendPostgres {
		t.Fatalf("unexpected default backend %q", config.Store.Backend)
	}
	if config.Database.MaxConns != 10 {
		t.Fatalf("unexpected default max conns %d", config.Database.MaxConns)
	}
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("STORE_BACKEND", StoreBackendMemory)
	t.Setenv("DEBUG", "true")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if config.Store.Backend != StoreBackendMemory {
		t.Fatalf("expected backend from environment, got %q", config.Store.Backend)
	}
	if !config.App.Debug {
		t.Fatalf("expected debug from environment")
	}
}

func TestValidateStructMessages(t *testing.T) {
	type form struct {
		Passport string `validate:"required,min=3,alphanum"`
		Name     string `validate:"required"`
	}

	errs := ValidateStruct(form{Passport: "a!"})
	if len(errs) != 2 {
		t.Fatalf("expected 2 field errors, got %v", errs)
	}
	if _, ok := errs["Name"]; !ok {
		t.Fatalf("expected Name error, got %v", errs)
	}

	if ValidateStruct(form{Passport: "P123", Name: "Ada"}) != nil {
		t.Fatalf("expected valid struct to pass")
	}

	if FormatValidationErrors(errs) == "" {
		t.Fatalf("expected formatted message")
	}
}
