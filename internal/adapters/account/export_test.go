// export_test.go exports private functions for white-box testing.
package account

// NewResolverForUID creates a Resolver that reports uid as the current user.
func NewResolverForUID(uid int) *Resolver {
	return &Resolver{getuid: func() int { return uid }}
}
