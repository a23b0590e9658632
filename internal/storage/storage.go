package storage

import (
	"io"
	"strings"
)

// Store is the blob store holding uploaded build images. Objects live under
// slash-separated paths namespaced by post id ("<postID>/<name>").
type Store interface {
	// Upload writes the object and returns its public URL.
	Upload(path string, r io.Reader) (string, error)
	// Remove deletes the object. Removing a missing object is not an error.
	Remove(path string) error
	// Usage returns the total size in bytes of every stored object.
	Usage() (int64, error)
}

// ObjectPath recovers the store path from a public image URL: the last two
// URL segments, post id and file name.
func ObjectPath(imageURL string) string {
	parts := strings.Split(strings.TrimSuffix(imageURL, "/"), "/")
	if len(parts) < 2 {
		return imageURL
	}
	return strings.Join(parts[len(parts)-2:], "/")
}
