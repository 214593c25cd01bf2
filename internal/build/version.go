package build

// Version is overridden at release time via
// -ldflags "-X github.com/gYonder/minsh/internal/build.Version=v1.2.3".
var Version = "dev"
