package domain

import "testing"

func TestHasPermission_Hierarchy(t *testing.T) {
	cases := []struct {
		user     Role
		required Role
		want     bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleTrainer, true},
		{RoleAdmin, RoleParent, true},
		{RoleTrainer, RoleAdmin, false},
		{RoleTrainer, RoleTrainer, true},
		{RoleTrainer, RoleParent, true},
		{RoleParent, RoleAdmin, false},
		{RoleParent, RoleTrainer, false},
		{RoleParent, RoleParent, true},
	}
	for _, tc := range cases {
		if got := HasPermission(tc.user, tc.required); got != tc.want {
			t.Errorf("HasPermission(%s, %s) = %v, want %v", tc.user, tc.required, got, tc.want)
		}
	}
}

func TestHasPermission_UnknownRole(t *testing.T) {
	if HasPermission("superuser", RoleParent) {
		t.Fatalf("unknown role must never pass a check")
	}
	if HasPermission("", RoleParent) {
		t.Fatalf("empty role must never pass a check")
	}
	// An unknown requirement is also unmet for unknown users.
	if HasPermission("guest", "guest") {
		t.Fatalf("unknown vs unknown must fail")
	}
}

func TestCanAccessResource(t *testing.T) {
	if !CanAccessResource(RoleAdmin, "someone-else", "admin-1") {
		t.Fatalf("admin must access any resource")
	}
	if !CanAccessResource(RoleParent, "parent-1", "parent-1") {
		t.Fatalf("owner must access own resource")
	}
	if CanAccessResource(RoleParent, "parent-1", "parent-2") {
		t.Fatalf("non-owner parent must be denied")
	}
	if CanAccessResource(RoleTrainer, "parent-1", "trainer-1") {
		t.Fatalf("trainer is not owner and not admin, must be denied")
	}
}
