// Package account resolves users from the system account database.
package account

import (
	"os/user"
	"strconv"

	"go.trai.ch/minish/internal/core/domain"
	"go.trai.ch/minish/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

var _ ports.AccountResolver = (*Resolver)(nil)

// Resolver implements ports.AccountResolver with os/user.
type Resolver struct {
	getuid func() int
}

// NewResolver creates a Resolver for the invoking user.
func NewResolver() *Resolver {
	return &Resolver{getuid: unix.Getuid}
}

// HomeDir returns the home directory recorded for the current uid.
// The HOME environment variable is not consulted.
func (r *Resolver) HomeDir() (string, error) {
	uid := r.getuid()
	u, err := user.LookupId(strconv.Itoa(uid))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrHomeLookupFailed.Error()), "uid", uid)
	}
	return u.HomeDir, nil
}

// Username returns the account name for uid.
func (r *Resolver) Username(uid uint32) (string, error) {
	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrUserLookupFailed.Error()), "uid", uid)
	}
	return u.Username, nil
}
