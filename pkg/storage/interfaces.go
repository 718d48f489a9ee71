package storage

import "io"

// ObjectStorage holds media too large to inline in the invitation document.
// Objects are addressed by key and exposed through a public URL.
type ObjectStorage interface {
	Upload(key string, reader io.Reader, contentType string) error
	Delete(key string) error
	PublicURL(key string) string
}
