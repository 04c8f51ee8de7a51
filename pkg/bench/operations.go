package bench

import (
	"github.com/appnet-org/protobench/pkg/capnperson"
	"github.com/appnet-org/protobench/pkg/tutorial"
	"github.com/appnet-org/protobench/pkg/wire"
)

const (
	ShortString = "abc"
	LongString  = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."

	int32Field = 2
	int32Value = 1234
)

const (
	defaultWarmup     = 10 * 1000
	defaultIterations = 10 * 1000 * 1000
	parseIterations   = 1000 * 1000
)

// sink keeps encoded buffers reachable so the loops are not optimized away.
var sink []byte

// NewSamplePerson builds the fixed record every benchmark runs against.
func NewSamplePerson() *tutorial.Person {
	return tutorial.NewPersonBuilder().
		SetID(1234).
		SetName("John Doe").
		SetEmail("jdoe@example.com").
		AddPhone(tutorial.NewPhoneNumberBuilder().
			SetNumber("555-4321").
			SetType(tutorial.PhoneTypeHome).
			Build()).
		Build()
}

func newJustIDPerson() *tutorial.Person {
	return tutorial.NewPersonBuilder().SetID(1234).Build()
}

func newJustEmailPerson() *tutorial.Person {
	return tutorial.NewPersonBuilder().SetEmail("jdoe@example.com").Build()
}

// DefaultSuite lists every benchmark with its standard warmup and iteration counts.
func DefaultSuite() []Benchmark {
	return []Benchmark{
		{"BenchmarkSerializePerson", SerializePerson, defaultWarmup, defaultIterations},
		{"BenchmarkSerializeNewPerson", SerializeNewPerson, defaultWarmup, defaultIterations},
		{"BenchmarkSerializeJustEmailPerson", SerializeJustEmailPerson, defaultWarmup, defaultIterations},
		{"BenchmarkSerializeJustIdPerson", SerializeJustIDPerson, defaultWarmup, defaultIterations},
		{"BenchmarkSerializeJustIdPersonToPreallocatedArray", SerializeJustIDPersonToPreallocatedArray, defaultWarmup, defaultIterations},
		{"BenchmarkParse", Parse, defaultWarmup, parseIterations},
		{"BenchmarkWriteInt32", WriteInt32, defaultWarmup, defaultIterations},
		{"BenchmarkWriteShortString", WriteString(ShortString), defaultWarmup, defaultIterations},
		{"BenchmarkWriteLongString", WriteString(LongString), defaultWarmup, defaultIterations},
		{"BenchmarkSerializeCapnpPerson", SerializeCapnpPerson, defaultWarmup, defaultIterations},
		{"BenchmarkParseCapnp", ParseCapnp, defaultWarmup, parseIterations},
	}
}

func serializeRepeatedly(person *tutorial.Person, iterations int) (int64, error) {
	for i := 0; i < iterations; i++ {
		buf, err := person.Marshal()
		if err != nil {
			return 0, err
		}
		sink = buf
	}
	return int64(person.Size()) * int64(iterations), nil
}

// SerializePerson encodes the sample record into a new buffer on every iteration.
func SerializePerson(iterations int) (int64, error) {
	return serializeRepeatedly(NewSamplePerson(), iterations)
}

// SerializeJustIDPerson encodes a record with only the id set.
func SerializeJustIDPerson(iterations int) (int64, error) {
	return serializeRepeatedly(newJustIDPerson(), iterations)
}

// SerializeJustEmailPerson encodes a record with only the email set.
func SerializeJustEmailPerson(iterations int) (int64, error) {
	return serializeRepeatedly(newJustEmailPerson(), iterations)
}

// SerializeNewPerson builds the sample record from scratch before each encode.
func SerializeNewPerson(iterations int) (int64, error) {
	var buf []byte
	for i := 0; i < iterations; i++ {
		var err error
		buf, err = NewSamplePerson().Marshal()
		if err != nil {
			return 0, err
		}
	}
	sink = buf
	return int64(len(buf)) * int64(iterations), nil
}

// SerializeJustIDPersonToPreallocatedArray encodes the id-only record into one
// buffer that is reused across iterations.
func SerializeJustIDPersonToPreallocatedArray(iterations int) (int64, error) {
	person := newJustIDPerson()
	size := person.Size()
	buf := make([]byte, size)

	for i := 0; i < iterations; i++ {
		// TODO: reuse one writer across iterations once wire.Writer has a Reset.
		w := wire.NewWriter(buf)
		if err := w.WriteMessageNoTag(person); err != nil {
			return 0, err
		}
	}
	return int64(size) * int64(iterations), nil
}

// Parse decodes the encoded sample record, discarding the result.
func Parse(iterations int) (int64, error) {
	data, err := NewSamplePerson().Marshal()
	if err != nil {
		return 0, err
	}
	for i := 0; i < iterations; i++ {
		if _, err := tutorial.ParsePerson(data); err != nil {
			return 0, err
		}
	}
	return int64(len(data)) * int64(iterations), nil
}

// WriteInt32 writes field 2 = 1234 into a buffer of exactly the encoded size.
func WriteInt32(iterations int) (int64, error) {
	size := wire.SizeInt32(int32Field, int32Value)
	buf := make([]byte, size)

	for i := 0; i < iterations; i++ {
		// TODO: reuse one writer across iterations once wire.Writer has a Reset.
		w := wire.NewWriter(buf)
		if err := w.WriteInt32(int32Field, int32Value); err != nil {
			return 0, err
		}
	}
	return int64(size) * int64(iterations), nil
}

// WriteString returns a benchmark writing s without a field tag.
func WriteString(s string) Func {
	return func(iterations int) (int64, error) {
		size := wire.SizeStringNoTag(s)
		buf := make([]byte, size)

		for i := 0; i < iterations; i++ {
			// TODO: reuse one writer across iterations once wire.Writer has a Reset.
			w := wire.NewWriter(buf)
			if err := w.WriteStringNoTag(s); err != nil {
				return 0, err
			}
		}
		return int64(size) * int64(iterations), nil
	}
}

// SerializeCapnpPerson builds the Cap'n Proto message once and frames it into a
// new buffer on every iteration.
func SerializeCapnpPerson(iterations int) (int64, error) {
	msg, err := capnperson.NewMessage(capnperson.FromTutorial(NewSamplePerson()))
	if err != nil {
		return 0, err
	}
	data, err := msg.Marshal()
	if err != nil {
		return 0, err
	}
	size := len(data)

	for i := 0; i < iterations; i++ {
		buf, err := msg.Marshal()
		if err != nil {
			return 0, err
		}
		sink = buf
	}
	return int64(size) * int64(iterations), nil
}

// ParseCapnp decodes the Cap'n Proto encoding of the sample record.
func ParseCapnp(iterations int) (int64, error) {
	data, err := capnperson.Marshal(capnperson.FromTutorial(NewSamplePerson()))
	if err != nil {
		return 0, err
	}
	for i := 0; i < iterations; i++ {
		if _, err := capnperson.Unmarshal(data); err != nil {
			return 0, err
		}
	}
	return int64(len(data)) * int64(iterations), nil
}
