package grpc

import (
	"encoding/json"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// codecName is the content-subtype carried as application/grpc+json.
const codecName = "json"

// init registers the JSON codec with the gRPC encoding registry.
func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec is a gRPC codec that uses JSON encoding.
// This allows serving and calling the service without proto-generated types.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return codecName
}

func withJSON(opts []grpclib.CallOption) []grpclib.CallOption {
	return append([]grpclib.CallOption{grpclib.CallContentSubtype(codecName)}, opts...)
}
