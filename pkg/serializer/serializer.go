// Package serializer puts the benchmarked codecs behind one interface so the
// harness can round-trip each of them before timing anything.
package serializer

import "fmt"

type Serializer interface {
	Marshal(msg any) ([]byte, error)
	Unmarshal(data []byte, out any) error
}

func typeError(codec string, v any) error {
	return fmt.Errorf("serializer: %s cannot handle %T", codec, v)
}
