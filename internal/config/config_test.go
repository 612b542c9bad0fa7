package config

import (
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SESSION_SECRET", "test-session-secret")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_test_key_secret")
	t.Setenv("SMTP_USERNAME", "ops@example.com")
	t.Setenv("SMTP_PASSWORD", "smtp-pw")
}

func TestLoad_Success(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Session.Secret != "test-session-secret" {
		t.Errorf("unexpected session secret: %q", cfg.Session.Secret)
	}
	if cfg.Razorpay.KeyID != "rzp_test_key" || cfg.Razorpay.KeySecret != "rzp_test_key_secret" {
		t.Errorf("unexpected razorpay config: %+v", cfg.Razorpay)
	}
	if cfg.DB.Host != "db.internal" {
		t.Errorf("env override not applied: %q", cfg.DB.Host)
	}
	// no SMTP_OPERATOR set: contact mail goes to the account itself
	if cfg.SMTP.Operator != "ops@example.com" {
		t.Errorf("expected operator to default to the SMTP username, got %q", cfg.SMTP.Operator)
	}
}

// A missing session secret is a deployment error; the server must refuse
// to start rather than fall back to an insecure default.
func TestLoad_MissingSessionSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error when SESSION_SECRET is absent, got nil")
	}
	if !strings.Contains(err.Error(), "SESSION_SECRET") {
		t.Fatalf("error should name the missing key, got %q", err.Error())
	}
}

func TestLoad_WhitespaceSecretIsStillMissing(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_SECRET", "   ")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error for blank SESSION_SECRET, got nil")
	}
	if !strings.Contains(err.Error(), "SESSION_SECRET") {
		t.Fatalf("error should name the missing key, got %q", err.Error())
	}
}

func TestLoad_ReportsEveryMissingKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	for _, key := range []string{"SESSION_SECRET", "RAZORPAY_KEY_SECRET"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error should name %s, got %q", key, err.Error())
		}
	}
}
