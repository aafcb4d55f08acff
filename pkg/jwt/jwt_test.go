package jwt

import (
	"testing"
	"time"

	"github.com/dimitrilongo/wacdo/config"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "secret-de-test-suffisamment-long",
		TokenTTL:  ttl,
	})
}

func TestManager_GenerateParse(t *testing.T) {
	m := newTestManager(time.Hour)

	token, err := m.Generate(42, true)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, attendu 42", claims.UserID)
	}
	if !claims.IsAdmin {
		t.Error("IsAdmin attendu true")
	}
	if claims.ID == "" {
		t.Error("jti vide")
	}
}

func TestManager_Parse_Expired(t *testing.T) {
	m := newTestManager(-time.Minute)

	token, err := m.Generate(1, false)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := m.Parse(token); err != ErrTokenExpired {
		t.Errorf("attendu ErrTokenExpired, obtenu %v", err)
	}
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	m := newTestManager(time.Hour)
	other := NewManager(&config.AuthConfig{
		JWTSecret: "un-autre-secret-tout-aussi-long",
		TokenTTL:  time.Hour,
	})

	token, err := other.Generate(1, false)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := m.Parse(token); err != ErrTokenInvalid {
		t.Errorf("attendu ErrTokenInvalid, obtenu %v", err)
	}
}

func TestManager_Parse_Garbage(t *testing.T) {
	m := newTestManager(time.Hour)

	if _, err := m.Parse("pas-un-token"); err != ErrTokenInvalid {
		t.Errorf("attendu ErrTokenInvalid, obtenu %v", err)
	}
}
