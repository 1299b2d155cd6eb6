// Package authrpc defines the wire contract of the banken AuthService:
// plain JSON request/response records carried over gRPC framing.
// Importing the package registers the "json" codec, and the typed client
// selects it per call, so no generated protobuf code is involved.
package authrpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the content-subtype the AuthService speaks
const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}
