package utils

import "testing"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(42, "waiter1", "Staff")
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("claims.UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "waiter1" {
		t.Errorf("claims.Username = %q, want %q", claims.Username, "waiter1")
	}
	if claims.Role != "Staff" {
		t.Errorf("claims.Role = %q, want %q", claims.Role, "Staff")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken("not-a-jwt"); err == nil {
		t.Error("ValidateToken accepted a malformed token")
	}
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	token, err := GenerateAccessToken(42, "waiter1", "Staff")
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateToken(tampered); err == nil {
		t.Error("ValidateToken accepted a token with a tampered signature")
	}
}
