package errors

// ValidateMaxDist checks the search radius parameter.
// The radius is measured in source pixels and bounds the window the distance
// search scans, so it must be at least 1.
func ValidateMaxDist(maxDist int) error {
	if maxDist < 1 {
		return New(ErrCodeInvalidParameter, "max distance must be at least 1, got %d", maxDist)
	}
	return nil
}

// ValidateSourceSize checks the long-edge pixel count the input is
// rasterized to.
func ValidateSourceSize(size int) error {
	if size < 1 {
		return New(ErrCodeInvalidParameter, "source size must be at least 1, got %d", size)
	}
	return nil
}

// ValidateTargetSize checks the long-edge pixel count of the final output.
// Zero means "use the default"; explicit values must be positive.
func ValidateTargetSize(size int) error {
	if size < 0 {
		return New(ErrCodeInvalidParameter, "target size must be at least 1, got %d", size)
	}
	return nil
}

// ValidateThreads checks an explicit worker count. Zero means "auto-detect";
// explicit values must be positive.
func ValidateThreads(threads int) error {
	if threads < 0 {
		return New(ErrCodeInvalidParameter, "thread count must be at least 1, got %d", threads)
	}
	return nil
}
