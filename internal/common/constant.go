package common

// LocalKeyPrefix namespaces every Local Store key so the app's blobs cannot
// collide with anything else kept in the same storage file.
const LocalKeyPrefix = "dh_local_"

// Placeholder values shipped in sample configs. A remote endpoint carrying
// either of them is treated as not configured.
const (
	PlaceholderURLMarker = "placeholder"
	PlaceholderKey       = "placeholder_key"
)
