//go:build !debug
// +build !debug

package tetra

func DebugLog(format string, args ...interface{})     {}
func DebugLogOnce(format string, args ...interface{}) {}
