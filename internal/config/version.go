package config

// Version is the futbolpath binary version.
// Set at build time via: -ldflags "-X github.com/futbolpath/futbolpath/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
