package utils

import (
	"encoding/hex"
	"testing"
)

func TestGenerateTokenKey(t *testing.T) {
	key, err := GenerateTokenKey(20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(key) != 40 {
		t.Errorf("expected 40 hex characters for 20 bytes, got %d", len(key))
	}
	if _, err := hex.DecodeString(key); err != nil {
		t.Errorf("expected a valid hex string, got %q", key)
	}
}

func TestGenerateTokenKey_Unique(t *testing.T) {
	key1, err := GenerateTokenKey(20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	key2, err := GenerateTokenKey(20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if key1 == key2 {
		t.Error("two generated keys must differ")
	}
}

func TestGenerateTokenKey_InvalidLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		if _, err := GenerateTokenKey(length); err == nil {
			t.Errorf("expected error for length %d, got nil", length)
		}
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"token scheme", "Token cafebabe", "cafebabe", false},
		{"bearer scheme", "Bearer cafebabe", "cafebabe", false},
		{"surrounding whitespace", "  Token cafebabe  ", "cafebabe", false},
		{"missing key", "Token", "", true},
		{"empty key", "Token ", "", true},
		{"empty header", "", "", true},
		{"too many parts", "Token cafe babe", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got key %q", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected key %q, got %q", tt.want, got)
			}
		})
	}
}
