package tutorial

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Descriptors resolved once from personFile.
var (
	personDesc      protoreflect.MessageDescriptor
	phoneNumberDesc protoreflect.MessageDescriptor
	phoneTypeDesc   protoreflect.EnumDescriptor

	personNameField  protoreflect.FieldDescriptor
	personIDField    protoreflect.FieldDescriptor
	personEmailField protoreflect.FieldDescriptor
	personPhoneField protoreflect.FieldDescriptor

	phoneNumberField protoreflect.FieldDescriptor
	phoneTypeField   protoreflect.FieldDescriptor
)

func init() {
	fd, err := protodesc.NewFile(personFile(), new(protoregistry.Files))
	if err != nil {
		panic(fmt.Sprintf("tutorial: invalid person descriptor: %v", err))
	}

	personDesc = fd.Messages().ByName("Person")
	phoneNumberDesc = personDesc.Messages().ByName("PhoneNumber")
	phoneTypeDesc = personDesc.Enums().ByName("PhoneType")

	fields := personDesc.Fields()
	personNameField = fields.ByName("name")
	personIDField = fields.ByName("id")
	personEmailField = fields.ByName("email")
	personPhoneField = fields.ByName("phone")

	phoneFields := phoneNumberDesc.Fields()
	phoneNumberField = phoneFields.ByName("number")
	phoneTypeField = phoneFields.ByName("type")
}

// personFile describes tutorial/person.proto:
//
//	syntax = "proto3";
//	package tutorial;
//
//	message Person {
//	  string name = 1;
//	  int32 id = 2;
//	  string email = 3;
//
//	  enum PhoneType {
//	    MOBILE = 0;
//	    HOME = 1;
//	    WORK = 2;
//	  }
//
//	  message PhoneNumber {
//	    string number = 1;
//	    PhoneType type = 2;
//	  }
//
//	  repeated PhoneNumber phone = 4;
//	}
func personFile() *descriptorpb.FileDescriptorProto {
	optional := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum()
	repeated := descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()

	field := func(name string, num int32, label *descriptorpb.FieldDescriptorProto_Label, typ descriptorpb.FieldDescriptorProto_Type, typeName string) *descriptorpb.FieldDescriptorProto {
		f := &descriptorpb.FieldDescriptorProto{
			Name:   proto.String(name),
			Number: proto.Int32(num),
			Label:  label,
			Type:   typ.Enum(),
		}
		if typeName != "" {
			f.TypeName = proto.String(typeName)
		}
		return f
	}

	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("tutorial/person.proto"),
		Package: proto.String("tutorial"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{{
			Name: proto.String("Person"),
			Field: []*descriptorpb.FieldDescriptorProto{
				field("name", 1, optional, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""),
				field("id", 2, optional, descriptorpb.FieldDescriptorProto_TYPE_INT32, ""),
				field("email", 3, optional, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""),
				field("phone", 4, repeated, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, ".tutorial.Person.PhoneNumber"),
			},
			NestedType: []*descriptorpb.DescriptorProto{{
				Name: proto.String("PhoneNumber"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("number", 1, optional, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""),
					field("type", 2, optional, descriptorpb.FieldDescriptorProto_TYPE_ENUM, ".tutorial.Person.PhoneType"),
				},
			}},
			EnumType: []*descriptorpb.EnumDescriptorProto{{
				Name: proto.String("PhoneType"),
				Value: []*descriptorpb.EnumValueDescriptorProto{
					{Name: proto.String("MOBILE"), Number: proto.Int32(0)},
					{Name: proto.String("HOME"), Number: proto.Int32(1)},
					{Name: proto.String("WORK"), Number: proto.Int32(2)},
				},
			}},
		}},
	}
}

// PersonDescriptor returns the descriptor of tutorial.Person.
func PersonDescriptor() protoreflect.MessageDescriptor {
	return personDesc
}
