package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"capnproto.org/go/capnp/v3"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/appnet-org/protobench/pkg/bench"
	"github.com/appnet-org/protobench/pkg/capnperson"
	"github.com/appnet-org/protobench/pkg/logging"
	"github.com/appnet-org/protobench/pkg/serializer"
	"github.com/appnet-org/protobench/pkg/tutorial"
)

// getLoggingConfig reads the log format from the environment. The level starts at
// info and LOG_LEVEL is applied afterwards through logging.SetLevel.
func getLoggingConfig() *logging.Config {
	format := os.Getenv("LOG_FORMAT")
	if format == "" {
		format = "console"
	}

	return &logging.Config{
		Level:  "info",
		Format: format,
	}
}

func main() {
	if err := logging.Init(getLoggingConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if err := logging.SetLevel(level); err != nil {
			logging.Warn("Ignoring invalid LOG_LEVEL", zap.String("level", level), zap.Error(err))
		}
	}
	defer logging.Sync()

	if err := checkProtobuf(&serializer.ProtoSerializer{}); err != nil {
		logging.Fatal("Protobuf round-trip failed", zap.Error(err))
	}
	if err := checkCapnp(&serializer.CapnpSerializer{}); err != nil {
		logging.Fatal("Cap'n Proto round-trip failed", zap.Error(err))
	}
	logging.Debug("Round-trip checks passed")

	results, err := bench.RunSuite(os.Stdout, bench.DefaultSuite())
	if err != nil {
		logging.Fatal("Benchmark failed", zap.Error(err))
	}
	logging.Info("All benchmarks finished", zap.Int("count", len(results)))
}

// checkProtobuf encodes the sample record and verifies the decoded copy matches.
func checkProtobuf(s serializer.Serializer) error {
	person := bench.NewSamplePerson()
	data, err := s.Marshal(person)
	if err != nil {
		return err
	}

	decoded := dynamicpb.NewMessage(tutorial.PersonDescriptor())
	if err := s.Unmarshal(data, decoded); err != nil {
		return err
	}
	if !proto.Equal(person, decoded) {
		return errors.New("decoded protobuf person does not match the sample")
	}
	return nil
}

func checkCapnp(s serializer.Serializer) error {
	want := capnperson.FromTutorial(bench.NewSamplePerson())
	msg, err := capnperson.NewMessage(want)
	if err != nil {
		return err
	}
	data, err := s.Marshal(msg)
	if err != nil {
		return err
	}

	var decoded *capnp.Message
	if err := s.Unmarshal(data, &decoded); err != nil {
		return err
	}
	got, err := capnperson.Read(decoded)
	if err != nil {
		return err
	}
	if !reflect.DeepEqual(got, want) {
		return fmt.Errorf("decoded person %+v, want %+v", got, want)
	}
	return nil
}
