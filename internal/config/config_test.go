package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestValidateRejectsBrokenFusionWeights(t *testing.T) {
	cfg := Default()
	cfg.Weights.Classifier = 0.9
	if err := cfg.Validate(); err == nil {
		t.Fatal("fusion weights not summing to 1.0 should fail validation")
	}
}

func TestValidateRejectsBrokenCalibrationWeights(t *testing.T) {
	cfg := Default()
	cfg.Calibration.ClassifierEntropy = 0.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("calibration weights not summing to 1.0 should fail validation")
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
dynamics:
  alpha: 0.2
temporal:
  risk_alert: 0.5
threads:
  window_days: 7
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Dynamics.Alpha != 0.2 {
		t.Fatalf("alpha override lost: %f", cfg.Dynamics.Alpha)
	}
	if cfg.Temporal.RiskAlert != 0.5 {
		t.Fatalf("risk_alert override lost: %f", cfg.Temporal.RiskAlert)
	}
	if cfg.Threads.WindowDays != 7 {
		t.Fatalf("window_days override lost: %d", cfg.Threads.WindowDays)
	}
	// Untouched sections keep their defaults.
	if cfg.Dynamics.Beta != DefaultDynamics().Beta {
		t.Fatalf("beta should keep its default, got %f", cfg.Dynamics.Beta)
	}
}

func TestLoadRejectsInvalidOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
weights:
  classifier: 0.99
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("overrides breaking weight sums should fail Load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file should error")
	}
}
