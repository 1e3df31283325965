// Package buildinfo reports the version details stamped into the binary
// at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/secretvault/internal/buildinfo.buildVersion=v1.0.0 \
//	  -X github.com/dmitrijs2005/secretvault/internal/buildinfo.buildDate=$(date -u +%F) \
//	  -X github.com/dmitrijs2005/secretvault/internal/buildinfo.buildCommit=$(git rev-parse --short HEAD)"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	tmpl := `Build version: %s
Build date: %s
Build commit: %s
`
	fmt.Fprintf(w, tmpl, buildVersion, buildDate, buildCommit)
}
