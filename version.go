package studiolingo

// Version information for studiolingo.
// These values can be overridden at build time using ldflags:
//
//	go build -ldflags "-X github.com/studiolingo/studiolingo.Version=1.0.0"
const (
	// Name is the application name.
	Name = "studiolingo"

	// Description is a short description of the application.
	Description = "Multi-language studio metadata translation automation"

	// Repository is the source code repository URL.
	Repository = "https://github.com/studiolingo/studiolingo"

	// License is the software license.
	License = "MIT"
)

// BuildInfo contains build-time information.
// These are typically set via ldflags during build.
var (
	// Version is the semantic version of the application.
	Version = "0.1.0"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// FullVersion returns the version string with optional build info.
func FullVersion() string {
	v := Version
	if GitCommit != "unknown" && GitCommit != "" {
		short := GitCommit
		if len(short) > 7 {
			short = short[:7]
		}
		v += "+" + short
	}
	return v
}
