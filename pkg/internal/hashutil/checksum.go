package hashutil

import (
	"crypto/sha256"
	"fmt"
)

// Prefix tags checksums with the algorithm that produced them
const Prefix = "sha256:"

// Checksum returns the tagged SHA256 checksum of data
func Checksum(data []byte) string {
	return fmt.Sprintf("%s%x", Prefix, sha256.Sum256(data))
}
