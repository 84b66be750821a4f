//go:build unix

package membench

import "golang.org/x/sys/unix"

func allocAligned(capacity int) ([]byte, bool, error) {
	buf, err := unix.Mmap(-1, 0, capacity,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		// Out of address space or rlimit; the heap fallback still satisfies
		// the alignment contract.
		buf, err2 := allocHeapAligned(capacity)
		if err2 != nil {
			return nil, false, err
		}
		return buf, false, nil
	}
	return buf, true, nil
}

func freeMapped(buf []byte) error {
	return unix.Munmap(buf)
}
