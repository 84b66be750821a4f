//go:build !unix

package membench

func allocAligned(capacity int) ([]byte, bool, error) {
	buf, err := allocHeapAligned(capacity)
	return buf, false, err
}

func freeMapped(buf []byte) error {
	return nil
}
