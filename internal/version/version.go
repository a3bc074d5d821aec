package version

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// LDFlags returns the -X linker flags that stamp the given build metadata
// into this package.
func LDFlags(version, commit, date string) string {
	const pkg = "github.com/dkoosis/spectrum/internal/version"
	return "-X " + pkg + ".Version=" + version +
		" -X " + pkg + ".CommitHash=" + commit +
		" -X " + pkg + ".BuildDate=" + date
}
