package app

// Owns reports whether the authenticated user owns a resource. Callers must
// confirm the resource exists before consulting ownership so that a foreign
// resource is rejected as unauthorized, never as missing.
func Owns(ownerID, userID string) bool {
	return ownerID != "" && ownerID == userID
}
