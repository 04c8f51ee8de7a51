// Package capnperson encodes the tutorial person record with Cap'n Proto so its
// throughput can be compared against protobuf. The layout is fixed by hand:
//
//	struct Person {
//	  id     @0 :Int32;
//	  name   @1 :Text;
//	  email  @2 :Text;
//	  phones @3 :List(Phone);
//	}
//	struct Phone {
//	  number @0 :Text;
//	  type   @1 :UInt16;
//	}
package capnperson

import (
	"fmt"

	"capnproto.org/go/capnp/v3"

	"github.com/appnet-org/protobench/pkg/tutorial"
)

var (
	personSize = capnp.ObjectSize{DataSize: 8, PointerCount: 3}
	phoneSize  = capnp.ObjectSize{DataSize: 8, PointerCount: 1}
)

// Pointer slots
const (
	personNamePtr   uint16 = 0
	personEmailPtr  uint16 = 1
	personPhonesPtr uint16 = 2

	phoneNumberPtr uint16 = 0
)

// Data offsets
const (
	personIDOff  capnp.DataOffset = 0
	phoneTypeOff capnp.DataOffset = 0
)

type Phone struct {
	Number string
	Type   tutorial.PhoneType
}

type Person struct {
	ID     int32
	Name   string
	Email  string
	Phones []Phone
}

// FromTutorial copies the fields of a protobuf person.
func FromTutorial(p *tutorial.Person) Person {
	out := Person{
		ID:    p.ID(),
		Name:  p.Name(),
		Email: p.Email(),
	}
	for i := 0; i < p.PhoneCount(); i++ {
		ph := p.Phone(i)
		out.Phones = append(out.Phones, Phone{Number: ph.Number(), Type: ph.Type()})
	}
	return out
}

// NewMessage builds a single-segment message whose root is p.
func NewMessage(p Person) (*capnp.Message, error) {
	msg, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	if err != nil {
		return nil, fmt.Errorf("capnperson: new message: %w", err)
	}

	root, err := capnp.NewRootStruct(seg, personSize)
	if err != nil {
		return nil, fmt.Errorf("capnperson: new root: %w", err)
	}
	root.SetUint32(personIDOff, uint32(p.ID))
	if err := root.SetNewText(personNamePtr, p.Name); err != nil {
		return nil, fmt.Errorf("capnperson: set name: %w", err)
	}
	if err := root.SetNewText(personEmailPtr, p.Email); err != nil {
		return nil, fmt.Errorf("capnperson: set email: %w", err)
	}

	if len(p.Phones) > 0 {
		phones, err := capnp.NewCompositeList(seg, phoneSize, int32(len(p.Phones)))
		if err != nil {
			return nil, fmt.Errorf("capnperson: new phone list: %w", err)
		}
		for i, ph := range p.Phones {
			st := phones.Struct(i)
			st.SetUint16(phoneTypeOff, uint16(ph.Type))
			if err := st.SetNewText(phoneNumberPtr, ph.Number); err != nil {
				return nil, fmt.Errorf("capnperson: set phone number: %w", err)
			}
		}
		if err := root.SetPtr(personPhonesPtr, phones.ToPtr()); err != nil {
			return nil, fmt.Errorf("capnperson: set phones: %w", err)
		}
	}

	return msg, nil
}

// Marshal encodes p into a framed Cap'n Proto message.
func Marshal(p Person) ([]byte, error) {
	msg, err := NewMessage(p)
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}

// Read decodes the root person of msg.
func Read(msg *capnp.Message) (Person, error) {
	rootPtr, err := msg.Root()
	if err != nil {
		return Person{}, fmt.Errorf("capnperson: read root: %w", err)
	}
	root := rootPtr.Struct()

	p := Person{ID: int32(root.Uint32(personIDOff))}
	if p.Name, err = text(root, personNamePtr); err != nil {
		return Person{}, err
	}
	if p.Email, err = text(root, personEmailPtr); err != nil {
		return Person{}, err
	}

	phonesPtr, err := root.Ptr(personPhonesPtr)
	if err != nil {
		return Person{}, fmt.Errorf("capnperson: read phones: %w", err)
	}
	phones := phonesPtr.List()
	for i := 0; i < phones.Len(); i++ {
		st := phones.Struct(i)
		number, err := text(st, phoneNumberPtr)
		if err != nil {
			return Person{}, err
		}
		p.Phones = append(p.Phones, Phone{Number: number, Type: tutorial.PhoneType(st.Uint16(phoneTypeOff))})
	}
	return p, nil
}

// Unmarshal decodes a framed message produced by Marshal.
func Unmarshal(data []byte) (Person, error) {
	msg, err := capnp.Unmarshal(data)
	if err != nil {
		return Person{}, fmt.Errorf("capnperson: unmarshal: %w", err)
	}
	return Read(msg)
}

func text(st capnp.Struct, i uint16) (string, error) {
	p, err := st.Ptr(i)
	if err != nil {
		return "", fmt.Errorf("capnperson: read text %d: %w", i, err)
	}
	return p.Text(), nil
}
