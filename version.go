package harvester

// Version is set at build time via -ldflags "-X github.com/thesilentpatch/harvester.Version=...".
var Version = "dev"
