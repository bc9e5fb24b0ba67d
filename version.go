package trackline

// Version is the release of the trackline module, reported by the CLI and HTTP host.
const Version = "0.3.0"
