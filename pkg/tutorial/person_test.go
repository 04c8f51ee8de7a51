package tutorial

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func newSample() *Person {
	return NewPersonBuilder().
		SetID(1234).
		SetName("John Doe").
		SetEmail("jdoe@example.com").
		AddPhone(NewPhoneNumberBuilder().SetNumber("555-4321").SetType(PhoneTypeHome).Build()).
		Build()
}

func TestPerson_RoundTrip(t *testing.T) {
	person := newSample()

	data, err := person.Marshal()
	require.NoError(t, err)
	require.Len(t, data, person.Size())

	decoded, err := ParsePerson(data)
	require.NoError(t, err)

	require.Equal(t, int32(1234), decoded.ID())
	require.Equal(t, "John Doe", decoded.Name())
	require.Equal(t, "jdoe@example.com", decoded.Email())
	require.Equal(t, 1, decoded.PhoneCount())
	require.Equal(t, "555-4321", decoded.Phone(0).Number())
	require.Equal(t, PhoneTypeHome, decoded.Phone(0).Type())
	require.True(t, person.Equal(decoded))
}

func TestPerson_Sizes(t *testing.T) {
	// name(10) + id(3) + email(18) + phone(14)
	require.Equal(t, 45, newSample().Size())
	require.Equal(t, 3, NewPersonBuilder().SetID(1234).Build().Size())
	require.Equal(t, 0, NewPersonBuilder().Build().Size())
}

func TestPerson_IDIsFieldTwo(t *testing.T) {
	data, err := NewPersonBuilder().SetID(1234).Build().Marshal()
	require.NoError(t, err)

	num, typ, n := protowire.ConsumeTag(data)
	require.Greater(t, n, 0)
	require.Equal(t, protowire.Number(2), num)
	require.Equal(t, protowire.VarintType, typ)

	v, m := protowire.ConsumeVarint(data[n:])
	require.Greater(t, m, 0)
	require.Equal(t, uint64(1234), v)
}

func TestPersonBuilder_BuildResets(t *testing.T) {
	b := NewPersonBuilder().SetID(7).SetName("first")
	first := b.Build()
	second := b.SetName("second").Build()

	require.Equal(t, int32(7), first.ID())
	require.Equal(t, "first", first.Name())
	require.Equal(t, int32(0), second.ID())
	require.Equal(t, "second", second.Name())
}

func TestParsePerson_Malformed(t *testing.T) {
	// name field claims five bytes but only one follows
	_, err := ParsePerson([]byte{0x0a, 0x05, 'a'})
	require.Error(t, err)
}

func TestPhoneType_String(t *testing.T) {
	require.Equal(t, "MOBILE", PhoneTypeMobile.String())
	require.Equal(t, "HOME", PhoneTypeHome.String())
	require.Equal(t, "WORK", PhoneTypeWork.String())
	require.Equal(t, "PhoneType(9)", PhoneType(9).String())
}
