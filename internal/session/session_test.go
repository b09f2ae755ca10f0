package session

import (
	"errors"
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestRoundTrip(t *testing.T) {
	tok, expires, err := New(secret, "admin-1", "jdoe", 0)
	if err != nil {
		t.Fatalf("New err: %v", err)
	}
	if until := time.Until(expires); until < 23*time.Hour || until > 25*time.Hour {
		t.Fatalf("default expiry not ~24h: %v", until)
	}
	claims, err := Parse(secret, tok)
	if err != nil {
		t.Fatalf("Parse err: %v", err)
	}
	if claims.AdminID != "admin-1" || claims.Usuario != "jdoe" {
		t.Fatalf("claims: %+v", claims)
	}
}

func TestParse_Expired(t *testing.T) {
	tok, _, err := New(secret, "admin-1", "jdoe", time.Nanosecond)
	if err != nil {
		t.Fatalf("New err: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := Parse(secret, tok); !errors.Is(err, ErrExpired) {
		t.Fatalf("err = %v, want ErrExpired", err)
	}
}

func TestParse_BadToken(t *testing.T) {
	if _, err := Parse(secret, ""); !errors.Is(err, ErrNoSession) {
		t.Fatalf("empty token err = %v", err)
	}
	tok, _, _ := New([]byte("other-secret"), "admin-1", "jdoe", time.Hour)
	if _, err := Parse(secret, tok); !errors.Is(err, ErrNoSession) {
		t.Fatalf("forged token err = %v", err)
	}
}
