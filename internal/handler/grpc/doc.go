// Package grpc exposes an [service.ItemStore] as the gRPC service
// securestorage.v1.SecureStorage.
//
// Messages are the models request and response types encoded with a JSON
// codec registered under the content-subtype "json", so no generated
// protobuf stubs are needed. Clients select it with
// grpc.CallContentSubtype(CodecName).
//
// A failed call carries a status whose code is derived from the error kind
// (InvalidArgument, DataLoss, Internal, Unknown), the StorageError message as
// status message and the wire code in the "x-error-code" trailer.
package grpc
