package groups

import "testing"

func TestHasTokenForAccount(t *testing.T) {
	// Test that HasTokenForAccount returns a boolean for valid account name
	result := HasTokenForAccount("test-account")
	_ = result

	// Test with empty account name
	result = HasTokenForAccount("")
	if result {
		t.Error("Expected false for empty account name")
	}
}

func TestValidateRole(t *testing.T) {
	for _, role := range []string{RoleOwner, RoleManager, RoleMember} {
		if err := ValidateRole(role); err != nil {
			t.Errorf("ValidateRole(%q) unexpected error: %v", role, err)
		}
	}
	if err := ValidateRole("owner"); err == nil {
		t.Error("ValidateRole should reject lowercase roles")
	}
	if err := ValidateRole(""); err == nil {
		t.Error("ValidateRole should reject empty role")
	}
}

func TestValidateDeliverySettings(t *testing.T) {
	valid := []string{DeliveryAllMail, DeliveryDaily, DeliveryDigest, DeliveryDisabled, DeliveryNone}
	for _, d := range valid {
		if err := ValidateDeliverySettings(d); err != nil {
			t.Errorf("ValidateDeliverySettings(%q) unexpected error: %v", d, err)
		}
	}
	if err := ValidateDeliverySettings("WEEKLY"); err == nil {
		t.Error("ValidateDeliverySettings should reject unknown values")
	}
}
