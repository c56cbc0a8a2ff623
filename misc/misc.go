// Package misc keeps build time information about the program.
package misc

// Set with -ldflags "-X guidec/misc.version=... -X guidec/misc.gitHash=...".
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "guidec"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
