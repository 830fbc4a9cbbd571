package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

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

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey keys one encoded figure.
	ArtifactKey(figure string, opts ArtifactKeyOpts) string
	// PackingKey keys one exported packing.
	PackingKey(opts PackingKeyOpts) string
}

// ArtifactKeyOpts are the inputs that determine a rendered figure's bytes.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	DPI    int    `json:"dpi"`
	// ConfigHash is Hash of the serialized model configuration.
	ConfigHash string `json:"config_hash"`
}

// PackingKeyOpts are the inputs that determine a packing.
type PackingKeyOpts struct {
	Seed          uint64     `json:"seed"`
	Attempts      int        `json:"attempts"`
	Radius        float64    `json:"radius"`
	MinDistFactor float64    `json:"min_dist_factor"`
	Region        [4]float64 `json:"region"`
	Mode          string     `json:"mode"`
	// Gaussian candidates only; zero for uniform runs.
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	StdDev  float64 `json:"std_dev"`
}

// DefaultKeyer hashes all options into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:<figure>:<hash>".
func (DefaultKeyer) ArtifactKey(figure string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+figure, opts)
}

// PackingKey returns "packing:<hash>".
func (DefaultKeyer) PackingKey(opts PackingKeyOpts) string {
	return hashKey("packing", opts)
}
