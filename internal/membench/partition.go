package membench

// PartitionSize returns the largest working-set size not exceeding capacity
// that is both a multiple of pageSize and evenly divisible by threads, so
// each worker gets an equal, page-granular chunk.
func PartitionSize(capacity, pageSize, threads int) int {
	if capacity <= 0 || pageSize <= 0 || threads <= 0 {
		return 0
	}
	pagesPerThread := capacity / threads / pageSize
	return pageSize * pagesPerThread * threads
}
