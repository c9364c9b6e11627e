package handlers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestProofPublicID_ScopedToUser(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	ts := int64(1735689600)

	idA := proofPublicID(userA, ts)
	idB := proofPublicID(userB, ts)

	if idA == idB {
		t.Error("Proof IDs for different users must not collide")
	}
	if !strings.HasPrefix(idA, "proof_") {
		t.Errorf("Expected proof_ prefix, got %q", idA)
	}
	if !strings.Contains(idA, userA.String()) {
		t.Errorf("Proof ID %q does not embed the owner's user id", idA)
	}
	if !strings.HasSuffix(idA, fmt.Sprintf("_%d", ts)) {
		t.Errorf("Proof ID %q does not end with the signing timestamp", idA)
	}
}
