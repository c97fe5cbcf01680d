package badger

import "fmt"

// Key prefixes for the compiled corpus layout
const (
	chunkPrefix = "chunk"
	metaPrefix  = "meta"
)

// makeChunkKey generates a key for a chunk by ID. Chunk IDs are plain
// strings, so lexicographic key order doubles as the stable iteration order.
func makeChunkKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", chunkPrefix, id))
}

// makeMetaKey generates a key for corpus-level metadata (e.g. the source
// kind recorded at compile time).
func makeMetaKey(field string) []byte {
	return []byte(fmt.Sprintf("%s:%s", metaPrefix, field))
}
