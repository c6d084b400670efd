package version

// Version is overridden at build time with
// -ldflags "-X oreja/cmd/oreja/cmd/version.Version=..."
var Version = "v0.1.0"
