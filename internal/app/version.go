package app

import "fmt"

// Build metadata, injected via ldflags:
//
//	go build -ldflags "-X github.com/avoronin/stockpile-backend/internal/app.Version=1.2.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the build metadata for startup logs and the health
// endpoints.
func BuildVersion() string {
	return fmt.Sprintf("%s (%s, built %s)", Version, Commit, BuildTime)
}
