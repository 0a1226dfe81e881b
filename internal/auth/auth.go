// Package auth holds principals, their credentials and the role checks the
// transport layer runs before handing a request to a service.
package auth

import (
	"time"

	"github.com/schuelerstaat/statebank/internal/ledger"
)

// Role is what a principal may do. The first three mirror the principal
// categories; the rest are staff roles granted on top.
type Role string

const (
	RoleCitizen       Role = "CITIZEN"
	RoleCompany       Role = "COMPANY"
	RoleGuest         Role = "GUEST"
	RoleBank          Role = "BANK"
	RoleBorderControl Role = "BORDER_CONTROL"
	RoleAdmin         Role = "ADMIN"
)

// Principal is a registered account holder. Guests carry no password hash;
// they authenticate by presenting their id alone.
type Principal struct {
	Signature    ledger.UserSignature
	Name         string
	Role         Role
	PasswordHash []byte
	CreatedAt    time.Time
}
