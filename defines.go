package dotmap

// constants for path handling
const (
	// PathDelimiter separates segments in a path string. There is no escape
	// syntax: a key containing a literal '.' cannot be addressed.
	PathDelimiter = "."

	// DefaultSegmentCacheCapacity bounds the package-global segment cache.
	DefaultSegmentCacheCapacity = 256
)
