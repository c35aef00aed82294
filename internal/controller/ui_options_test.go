package controller

import "testing"

func TestStartOptions(t *testing.T) {
	session := newFakeSession(nil)

	cfg := NewStartConfig(WithSession(session), WithApplyTemplate(true))
	if cfg.session != session {
		t.Fatalf("WithSession() session = %v, want %v", cfg.session, session)
	}

	if !cfg.applyTemplate {
		t.Fatalf("WithApplyTemplate(true) applyTemplate = false")
	}

	if cfg := NewStartConfig(); cfg.session != nil || cfg.applyTemplate {
		t.Fatalf("NewStartConfig() = %+v, want zero value", cfg)
	}
}
