package handlers

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func TestUserIDFromClaims_Valid(t *testing.T) {
	want := uuid.New()
	claims := jwt.MapClaims{"user_id": want.String(), "role": "user"}

	got, err := userIDFromClaims(claims)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestUserIDFromClaims_MissingOrMalformed(t *testing.T) {
	cases := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"missing claim", jwt.MapClaims{"role": "user"}},
		{"non-string claim", jwt.MapClaims{"user_id": 12345}},
		{"nil claim", jwt.MapClaims{"user_id": nil}},
		{"not a uuid", jwt.MapClaims{"user_id": "not-a-uuid"}},
	}

	for _, tc := range cases {
		if _, err := userIDFromClaims(tc.claims); err == nil {
			t.Errorf("%s: expected an error, got none", tc.name)
		}
	}
}
