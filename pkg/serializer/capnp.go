package serializer

import (
	"capnproto.org/go/capnp/v3"
)

// CapnpSerializer marshals *capnp.Message values and unmarshals into **capnp.Message.
type CapnpSerializer struct{}

func (c *CapnpSerializer) Marshal(msg any) ([]byte, error) {
	m, ok := msg.(*capnp.Message)
	if !ok {
		return nil, typeError("capnp", msg)
	}
	return m.Marshal()
}

func (c *CapnpSerializer) Unmarshal(data []byte, out any) error {
	dst, ok := out.(**capnp.Message)
	if !ok {
		return typeError("capnp", out)
	}
	msg, err := capnp.Unmarshal(data)
	if err != nil {
		return err
	}
	*dst = msg
	return nil
}
