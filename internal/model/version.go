package model

// Version is the release version, overridden at build time via
// -ldflags "-X sentimap/internal/model.Version=...".
var Version = "0.3.0"
