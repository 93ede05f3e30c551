package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ArtifactKeyOpts holds everything besides the outline text that affects a
// rendered artifact.
type ArtifactKeyOpts struct {
	Format  string  `json:"format"`
	Version string  `json:"version"`
	Scale   float64 `json:"scale,omitempty"`
}

// ArtifactKey returns the cache key for rendering source with opts.
func ArtifactKey(source []byte, opts ArtifactKeyOpts) string {
	return hashKey("artifact", Hash(source), opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
