// Package tutorial binds the tutorial.Person protobuf record used as benchmark input.
// Messages are dynamicpb values over a descriptor built at init, so no protoc step is needed.
package tutorial

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// PhoneType is the tutorial.Person.PhoneType enum.
type PhoneType int32

const (
	PhoneTypeMobile PhoneType = 0
	PhoneTypeHome   PhoneType = 1
	PhoneTypeWork   PhoneType = 2
)

func (t PhoneType) String() string {
	if v := phoneTypeDesc.Values().ByNumber(protoreflect.EnumNumber(t)); v != nil {
		return string(v.Name())
	}
	return fmt.Sprintf("PhoneType(%d)", int32(t))
}

// Person is an immutable tutorial.Person. It implements proto.Message.
type Person struct {
	msg protoreflect.Message
}

// ProtoReflect exposes the underlying message to the protobuf runtime.
func (p *Person) ProtoReflect() protoreflect.Message {
	return p.msg
}

func (p *Person) ID() int32 {
	return int32(p.msg.Get(personIDField).Int())
}

func (p *Person) Name() string {
	return p.msg.Get(personNameField).String()
}

func (p *Person) Email() string {
	return p.msg.Get(personEmailField).String()
}

// PhoneCount returns the number of phone entries.
func (p *Person) PhoneCount() int {
	return p.msg.Get(personPhoneField).List().Len()
}

// Phone returns the i-th phone entry.
func (p *Person) Phone(i int) *PhoneNumber {
	return &PhoneNumber{msg: p.msg.Get(personPhoneField).List().Get(i).Message()}
}

// Size reports the encoded size without encoding.
func (p *Person) Size() int {
	return proto.Size(p)
}

// Marshal encodes the person into a newly allocated buffer.
func (p *Person) Marshal() ([]byte, error) {
	return proto.Marshal(p)
}

// Equal reports whether both persons carry the same field values.
func (p *Person) Equal(other *Person) bool {
	return proto.Equal(p, other)
}

// ParsePerson decodes a tutorial.Person from data.
func ParsePerson(data []byte) (*Person, error) {
	msg := dynamicpb.NewMessage(personDesc)
	if err := proto.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("tutorial: parse person: %w", err)
	}
	return &Person{msg: msg}, nil
}

// PhoneNumber is an immutable tutorial.Person.PhoneNumber.
type PhoneNumber struct {
	msg protoreflect.Message
}

func (n *PhoneNumber) Number() string {
	return n.msg.Get(phoneNumberField).String()
}

func (n *PhoneNumber) Type() PhoneType {
	return PhoneType(n.msg.Get(phoneTypeField).Enum())
}

// PersonBuilder accumulates fields until Build is called.
type PersonBuilder struct {
	msg *dynamicpb.Message
}

func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{msg: dynamicpb.NewMessage(personDesc)}
}

func (b *PersonBuilder) SetID(id int32) *PersonBuilder {
	b.msg.Set(personIDField, protoreflect.ValueOfInt32(id))
	return b
}

func (b *PersonBuilder) SetName(name string) *PersonBuilder {
	b.msg.Set(personNameField, protoreflect.ValueOfString(name))
	return b
}

func (b *PersonBuilder) SetEmail(email string) *PersonBuilder {
	b.msg.Set(personEmailField, protoreflect.ValueOfString(email))
	return b
}

// AddPhone appends a built phone entry.
func (b *PersonBuilder) AddPhone(phone *PhoneNumber) *PersonBuilder {
	b.msg.Mutable(personPhoneField).List().Append(protoreflect.ValueOfMessage(phone.msg))
	return b
}

// Build hands the accumulated message to a Person and resets the builder.
func (b *PersonBuilder) Build() *Person {
	p := &Person{msg: b.msg}
	b.msg = dynamicpb.NewMessage(personDesc)
	return p
}

// PhoneNumberBuilder accumulates phone entry fields.
type PhoneNumberBuilder struct {
	msg *dynamicpb.Message
}

func NewPhoneNumberBuilder() *PhoneNumberBuilder {
	return &PhoneNumberBuilder{msg: dynamicpb.NewMessage(phoneNumberDesc)}
}

func (b *PhoneNumberBuilder) SetNumber(number string) *PhoneNumberBuilder {
	b.msg.Set(phoneNumberField, protoreflect.ValueOfString(number))
	return b
}

func (b *PhoneNumberBuilder) SetType(t PhoneType) *PhoneNumberBuilder {
	b.msg.Set(phoneTypeField, protoreflect.ValueOfEnum(protoreflect.EnumNumber(t)))
	return b
}

func (b *PhoneNumberBuilder) Build() *PhoneNumber {
	n := &PhoneNumber{msg: b.msg}
	b.msg = dynamicpb.NewMessage(phoneNumberDesc)
	return n
}
