//go:build !unix

package membench

func elevatePriority() error {
	return nil
}
