package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ArtifactKeyOpts identifies one rendered artifact.
type ArtifactKeyOpts struct {
	Text      string `json:"text"`
	Level     string `json:"level"`
	Format    string `json:"format"`
	Scale     int    `json:"scale"`
	Border    int    `json:"border"`
	MergeRuns bool   `json:"merge_runs,omitempty"`
	Invert    bool   `json:"invert,omitempty"`
}

// ArtifactKey returns the cache key for a rendered artifact.
// Scale does not affect vector or text output, so it is dropped for those
// formats to let requests that differ only in scale share an entry.
func ArtifactKey(opts ArtifactKeyOpts) string {
	if opts.Format == "svg" || opts.Format == "text" {
		opts.Scale = 0
	}
	return hashKey("artifact", opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
