package domain

// roleRank defines the fixed total order parent < trainer < admin used for
// permission comparisons. Unknown roles rank 0 and never pass a check.
var roleRank = map[Role]int{
	RoleParent:  1,
	RoleTrainer: 2,
	RoleAdmin:   3,
}

// HasPermission reports whether userRole's rank is at least requiredRole's.
func HasPermission(userRole, requiredRole Role) bool {
	rank, ok := roleRank[userRole]
	if !ok {
		return false
	}
	return rank >= roleRank[requiredRole]
}

// CanAccessResource reports whether a user may access a resource owned by
// resourceOwnerID. Admins can access everything; other users only their own
// resources. Trainer access to related resources (e.g. a booking's dog) must
// be established per resource type by the owning service, not here.
func CanAccessResource(userRole Role, resourceOwnerID, currentUserID string) bool {
	if userRole == RoleAdmin {
		return true
	}
	return resourceOwnerID == currentUserID
}
