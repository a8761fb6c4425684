package service

import (
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/entity"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/domain/policy"
	"github.com/Kaiser28/comptable-dashboard-sub001/internal/utils/apierror"
)

// userUpdater acts as a "Change Set" context.
// It accumulates errors and tracks if a save is actually needed.
type userUpdater struct {
	actor  *entity.User
	target *entity.User
	policy *policy.UserPolicy

	// State
	err   apierror.ErrorResponse
	dirty bool
}

// setProfileString handles standard string fields (Nom, Prenom, CabinetNom, etc.)
func (u *userUpdater) setProfileString(newVal *string, targetField *string) {
	if u.err != nil || newVal == nil {
		return
	}

	if *newVal == *targetField {
		return
	}

	// Policy Check: Can we modify the profile?
	if err := u.policy.CanUpdateProfile(u.actor, u.target); err != nil {
		u.err = err
		return
	}

	*targetField = *newVal
	u.dirty = true
}

// setPermissions handles the complex logic of permission bitmasks
func (u *userUpdater) setPermissions(newVal *int64) {
	if u.err != nil || newVal == nil {
		return
	}

	newPerms := entity.Permission(*newVal)

	if u.target.Permissions == newPerms {
		return
	}

	// Policy Check
	if err := u.policy.CanUpdatePermissions(u.actor, u.target, newPerms); err != nil {
		u.err = err
		return
	}

	u.target.Permissions = newPerms
	u.dirty = true
}

// setSuspended handles suspension, a punitive action with its own policy.
func (u *userUpdater) setSuspended(newVal *bool) {
	if u.err != nil || newVal == nil {
		return
	}

	if u.target.Suspended == *newVal {
		return
	}

	if err := u.policy.CanPunishUser(u.actor, u.target); err != nil {
		u.err = err
		return
	}

	u.target.Suspended = *newVal
	u.dirty = true
}
