package util

import (
	"fmt"
	"github.com/twmb/murmur3"
)

// HashFunc ...
func HashFunc(s string) uint32 {
	return murmur3.Sum32([]byte(s))
}

// ETag returns a weak entity tag of the content
func ETag(data []byte) string {
	h1, h2 := murmur3.Sum128(data)
	return fmt.Sprintf(`W/"%016x%016x"`, h1, h2)
}
