package appointment

import (
	"testing"

	"github.com/Mmasetshaba28/haircut-booking/internal/httperr"
	"github.com/Mmasetshaba28/haircut-booking/internal/models"
)

func TestTransition_Matrix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ev      Event
		from    Status
		want    Status
		wantErr bool
	}{
		{EventConfirm, StatusPending, StatusConfirmed, false},
		{EventConfirm, StatusConfirmed, "", true},
		{EventConfirm, StatusCompleted, "", true},
		{EventConfirm, StatusCancelled, "", true},

		{EventComplete, StatusConfirmed, StatusCompleted, false},
		{EventComplete, StatusPending, "", true},
		{EventComplete, StatusCompleted, "", true},
		{EventComplete, StatusCancelled, "", true},

		{EventCancel, StatusPending, StatusCancelled, false},
		{EventCancel, StatusConfirmed, StatusCancelled, false},
		{EventCancel, StatusCompleted, "", true},
		{EventCancel, StatusCancelled, "", true},
	}

	for _, tc := range cases {
		got, err := Transition(tc.ev, tc.from)

		if tc.wantErr {
			if !httperr.IsBusiness(err, httperr.CodeInvalidState) {
				t.Errorf("Transition(%s, %s): expected invalid_state, got %v", tc.ev, tc.from, err)
			}
			continue
		}

		if err != nil {
			t.Errorf("Transition(%s, %s): unexpected error %v", tc.ev, tc.from, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Transition(%s, %s) = %s, want %s", tc.ev, tc.from, got, tc.want)
		}
	}
}

func TestTransition_UnknownEvent(t *testing.T) {
	t.Parallel()

	if _, err := Transition(Event("reopen"), StatusCancelled); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("expected invalid_state for unknown event, got %v", err)
	}
}

func TestAuthorize(t *testing.T) {
	t.Parallel()

	admin := Actor{UserID: 1, Role: models.RoleAdmin}
	owner := Actor{UserID: 7, Role: models.RoleCustomer}
	stranger := Actor{UserID: 8, Role: models.RoleCustomer}

	const ownerID = 7

	cases := []struct {
		name      string
		actor     Actor
		cap       Capability
		forbidden bool
	}{
		{"admin passes admin-only", admin, CapabilityAdminOnly, false},
		{"owner fails admin-only", owner, CapabilityAdminOnly, true},
		{"stranger fails admin-only", stranger, CapabilityAdminOnly, true},
		{"admin passes owner-or-admin", admin, CapabilityOwnerOrAdmin, false},
		{"owner passes owner-or-admin", owner, CapabilityOwnerOrAdmin, false},
		{"stranger fails owner-or-admin", stranger, CapabilityOwnerOrAdmin, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.actor, ownerID, tc.cap)
			if tc.forbidden && !httperr.IsBusiness(err, httperr.CodeForbidden) {
				t.Fatalf("expected forbidden, got %v", err)
			}
			if !tc.forbidden && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRuleFor_DeclaredCapabilities(t *testing.T) {
	t.Parallel()

	confirm, _ := RuleFor(EventConfirm)
	if confirm.Requires != CapabilityAdminOnly {
		t.Error("confirm must be admin-only")
	}

	complete, _ := RuleFor(EventComplete)
	if complete.Requires != CapabilityAdminOnly {
		t.Error("complete must be admin-only")
	}

	cancel, _ := RuleFor(EventCancel)
	if cancel.Requires != CapabilityOwnerOrAdmin {
		t.Error("cancel must allow the owner or an admin")
	}
}
