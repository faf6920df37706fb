package version

// Version is overridden at build time with -ldflags "-X .../version.Version=x.y.z"
var Version = "0.1.0"
