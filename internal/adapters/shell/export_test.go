// export_test.go exports private functions for white-box testing.
package shell

var (
	Command  = command
	LookPath = lookPath
)
