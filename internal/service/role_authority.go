package service

// RoleAuthority holds the immutable set of user ids eligible for the
// admin role claim. It is built once from configuration at process start;
// there is no runtime mutation path.
type RoleAuthority struct {
	adminIDs map[int64]struct{}
}

// NewRoleAuthority constructs a [RoleAuthority] from the configured
// allowlist.
func NewRoleAuthority(adminIDs []int64) RoleAuthority {
	ids := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		ids[id] = struct{}{}
	}
	return RoleAuthority{adminIDs: ids}
}

// IsAdmin reports whether the given user id is on the allowlist.
func (r RoleAuthority) IsAdmin(userID int64) bool {
	_, ok := r.adminIDs[userID]
	return ok
}
