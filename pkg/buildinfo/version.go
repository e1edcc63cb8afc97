// Package buildinfo identifies the schemagen build. Release builds stamp
// Version, Commit and Date with -ldflags "-X"; builds installed with
// "go install" fall back to the module version recorded by the toolchain.
//
// The version also keys the snapshot cache together with [SnapshotFormat],
// so graphs compiled by another build are never reused.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// SnapshotFormat is the revision of the JSON and MessagePack snapshot
// layout. It changes whenever a snapshot field is added or renamed.
const SnapshotFormat = 2

var (
	// Version is the release version, e.g. "v0.3.0".
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build timestamp in RFC 3339.
	Date = "unknown"
)

func init() {
	if Version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
}

// String returns the build description printed by "schemagen --version".
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s\nsnapshot format: %d", Version, Commit, Date, SnapshotFormat)
}

// Template returns the cobra version template.
func Template() string {
	return "{{.Name}} " + String() + "\n"
}
