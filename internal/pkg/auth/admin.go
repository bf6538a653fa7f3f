package auth

import "crypto/subtle"

// AdminUser is the only account accepted by the admin guard.
const AdminUser = "admin"

// AdminCredentials checks basic auth pairs against a configured bcrypt hash.
type AdminCredentials struct {
	hash   string
	hasher PasswordHasher
}

// NewAdminCredentials builds a checker; an empty hash disables protection.
func NewAdminCredentials(hash string, hasher PasswordHasher) *AdminCredentials {
	return &AdminCredentials{hash: hash, hasher: hasher}
}

// Enabled reports whether admin routes require credentials.
func (a *AdminCredentials) Enabled() bool {
	return a != nil && a.hash != ""
}

// Verify reports whether user and password match the admin account.
func (a *AdminCredentials) Verify(user, password string) bool {
	if !a.Enabled() {
		return true
	}
	if subtle.ConstantTimeCompare([]byte(user), []byte(AdminUser)) != 1 {
		return false
	}
	return a.hasher.Compare(a.hash, password) == nil
}
