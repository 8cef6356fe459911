package version

// Version is the current czcustom release, overridable at build time with
// -ldflags "-X github.com/thomas-vilte/czcustom/internal/version.Version=..."
var Version = "0.3.0"

// FullVersion returns the version with its v prefix
func FullVersion() string {
	return "v" + Version
}
