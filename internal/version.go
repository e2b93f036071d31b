package internal

// Version is the tool version. Overridden at build time with
// -ldflags "-X github.com/meilikey/meilikey/internal.Version=...".
var Version = "0.2.0"
