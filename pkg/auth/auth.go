package auth

import (
	"context"

	"github.com/pkg/errors"
)

// Identity of the requester, resolved by the gateway and forwarded via
// trusted headers. Authentication itself happens upstream.
type Identity struct {
	Username  string
	FirstName string
	LastName  string
	Role      string
}

const (
	XUserNameHeader      = "X-User-Name"
	XUserRoleHeader      = "X-User-Role"
	XUserFirstNameHeader = "X-User-First-Name"
	XUserLastNameHeader  = "X-User-Last-Name"

	RoleStaff = "staff"
)

func (id Identity) IsStaff() bool {
	return id.Role == RoleStaff
}

type ctxKey struct{}

var ErrNoIdentity = errors.New("no identity in context")

func SetIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// GetIdentity returns the request identity or ErrNoIdentity for
// anonymous requests.
func GetIdentity(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok || id.Username == "" {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}
