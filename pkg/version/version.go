package version

// version is overridden at build time via
// -ldflags "-X github.com/macanangkasa/klondike/pkg/version.version=...".
var version = "dev"

func Get() string {
	return version
}
