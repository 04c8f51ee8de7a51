package serializer

import "google.golang.org/protobuf/proto"

// ProtoSerializer handles any proto.Message, including dynamic ones.
type ProtoSerializer struct{}

func (p *ProtoSerializer) Marshal(msg any) ([]byte, error) {
	m, ok := msg.(proto.Message)
	if !ok {
		return nil, typeError("protobuf", msg)
	}
	return proto.Marshal(m)
}

// Unmarshal decodes into out, which must already carry its message type.
func (p *ProtoSerializer) Unmarshal(data []byte, out any) error {
	m, ok := out.(proto.Message)
	if !ok {
		return typeError("protobuf", out)
	}
	return proto.Unmarshal(data, m)
}
