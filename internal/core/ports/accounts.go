package ports

// AccountResolver defines the interface for querying the system account database.
//
//go:generate mockgen -source=accounts.go -destination=mocks/mock_accounts.go -package=mocks
type AccountResolver interface {
	// HomeDir returns the home directory of the user the shell runs as.
	HomeDir() (string, error)
	// Username returns the login name for a numeric user id.
	Username(uid uint32) (string, error)
}
