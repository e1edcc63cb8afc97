package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/star-e/generator-sub002/pkg/buildinfo"
)

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// GraphKey keys the compiled snapshot of a manifest. The file name is part
// of the key because it selects the decoder and the default module name.
// The build version and snapshot format are mixed in so a snapshot written
// by another build never decodes into this one.
func GraphKey(filename string, manifest []byte) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%d\x00", filename, buildinfo.Version, buildinfo.SnapshotFormat)
	h.Write(manifest)
	return "graph:" + hex.EncodeToString(h.Sum(nil))
}
