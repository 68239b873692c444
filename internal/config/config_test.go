package config

import (
	"testing"
	"time"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("PIB_ALERT_EMAIL", "") // clear any inherited value
	t.Setenv("ALERT_ENABLED", "false")
	t.Setenv("SMTP_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != "development" {
		t.Errorf("unexpected Environment: %q", cfg.Environment)
	}
	if cfg.CollectInterval != 60*time.Minute {
		t.Errorf("unexpected CollectInterval: %v", cfg.CollectInterval)
	}
	if cfg.BatchSize != 20 {
		t.Errorf("unexpected BatchSize: %d", cfg.BatchSize)
	}
	if cfg.MaxLength != 512 {
		t.Errorf("unexpected MaxLength: %d", cfg.MaxLength)
	}
	if !cfg.NLPEnabled {
		t.Error("expected NLPEnabled to default true")
	}
}

func TestLoadReadsOverriddenEnv(t *testing.T) {
	t.Setenv("BATCH_SIZE", "50")
	t.Setenv("NLP_ENABLED", "false")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "15")
	t.Setenv("ALERT_ENABLED", "false")
	t.Setenv("SMTP_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BatchSize != 50 {
		t.Errorf("unexpected BatchSize: %d", cfg.BatchSize)
	}
	if cfg.NLPEnabled {
		t.Error("expected NLPEnabled to be false")
	}
	if cfg.FetchTimeout != 15*time.Second {
		t.Errorf("unexpected FetchTimeout: %v", cfg.FetchTimeout)
	}
}

func TestLoadRequiresPIBAlertEmailWhenAlertingAndSMTPBothEnabled(t *testing.T) {
	t.Setenv("ALERT_ENABLED", "true")
	t.Setenv("SMTP_ENABLED", "true")
	t.Setenv("PIB_ALERT_EMAIL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected a ConfigError when PIB_ALERT_EMAIL is missing")
	}
}

func TestLoadAllowsMissingPIBAlertEmailWhenSMTPDisabled(t *testing.T) {
	t.Setenv("ALERT_ENABLED", "true")
	t.Setenv("SMTP_ENABLED", "false")
	t.Setenv("PIB_ALERT_EMAIL", "")

	if _, err := Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
