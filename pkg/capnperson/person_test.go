package capnperson

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/appnet-org/protobench/pkg/tutorial"
)

func TestMarshal_RoundTrip(t *testing.T) {
	want := Person{
		ID:    1234,
		Name:  "John Doe",
		Email: "jdoe@example.com",
		Phones: []Phone{
			{Number: "555-4321", Type: tutorial.PhoneTypeHome},
			{Number: "555-1111", Type: tutorial.PhoneTypeWork},
		},
	}

	data, err := Marshal(want)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestMarshal_NoPhones(t *testing.T) {
	data, err := Marshal(Person{ID: -5})
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, int32(-5), got.ID)
	require.Empty(t, got.Name)
	require.Nil(t, got.Phones)
}

func TestFromTutorial(t *testing.T) {
	p := tutorial.NewPersonBuilder().
		SetID(1234).
		SetName("John Doe").
		AddPhone(tutorial.NewPhoneNumberBuilder().SetNumber("555-4321").SetType(tutorial.PhoneTypeHome).Build()).
		Build()

	require.Equal(t, Person{
		ID:     1234,
		Name:   "John Doe",
		Phones: []Phone{{Number: "555-4321", Type: tutorial.PhoneTypeHome}},
	}, FromTutorial(p))
}

func TestUnmarshal_Garbage(t *testing.T) {
	_, err := Unmarshal([]byte{0x01, 0x02})
	require.Error(t, err)
}
