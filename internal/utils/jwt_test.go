package utils

import "testing"

const testSecret = "test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken(testSecret, "alice", 60)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if tok.Token == "" {
		t.Fatal("empty token string")
	}
	name, err := VerifyAccessToken(testSecret, tok.Token)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if name != "alice" {
		t.Errorf("name = %q, want %q", name, "alice")
	}
}

func TestVerifyAccessTokenWrongSecret(t *testing.T) {
	tok, err := NewAccessToken(testSecret, "alice", 60)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if _, err := VerifyAccessToken("other-secret", tok.Token); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	// A negative TTL produces a token that expired in the past.
	tok, err := NewAccessToken(testSecret, "alice", -1)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if _, err := VerifyAccessToken(testSecret, tok.Token); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyAccessTokenGarbage(t *testing.T) {
	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := VerifyAccessToken(testSecret, raw); err != ErrInvalidToken {
			t.Errorf("VerifyAccessToken(%q) err = %v, want ErrInvalidToken", raw, err)
		}
	}
}
