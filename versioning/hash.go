package versioning

import (
	"fmt"
	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Fingerprint returns a stable hash of the ordered rules, empty rules yield an empty fingerprint
func (r Rules) Fingerprint() string {
	if len(r) == 0 {
		return ""
	}
	hash, err := highwayhash.New64(key)
	if err != nil {
		return ""
	}
	for _, rule := range r {
		hash.Write([]byte(rule.Match))
		hash.Write([]byte{0})
		hash.Write([]byte(rule.Version))
		hash.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hash.Sum64())
}
