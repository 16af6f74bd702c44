package grpc

import (
	"context"

	"github.com/MKhiriev/go-secure-storage/internal/app"
	"github.com/MKhiriev/go-secure-storage/models"
	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "securestorage.v1.SecureStorage"

// Full method names, as seen by interceptors and used by clients.
const (
	FullMethodSetItem                = "/" + ServiceName + "/SetItem"
	FullMethodGetItem                = "/" + ServiceName + "/GetItem"
	FullMethodRemoveItem             = "/" + ServiceName + "/RemoveItem"
	FullMethodClearItemWithPrefix    = "/" + ServiceName + "/ClearItemWithPrefix"
	FullMethodGetPrefixedKeys        = "/" + ServiceName + "/GetPrefixedKeys"
	FullMethodSetSynchronizeKeychain = "/" + ServiceName + "/SetSynchronizeKeychain"
)

// Empty is the response of calls that return nothing.
type Empty struct{}

// SecureStorageServer is the server API of securestorage.v1.SecureStorage.
type SecureStorageServer interface {
	SetItem(context.Context, *models.SetItemRequest) (*Empty, error)
	GetItem(context.Context, *models.GetItemRequest) (*models.GetItemResponse, error)
	RemoveItem(context.Context, *models.RemoveItemRequest) (*models.RemoveItemResponse, error)
	ClearItemWithPrefix(context.Context, *models.ClearItemsRequest) (*Empty, error)
	GetPrefixedKeys(context.Context, *models.PrefixedKeysRequest) (*models.PrefixedKeysResponse, error)
	SetSynchronizeKeychain(context.Context, *models.SynchronizeRequest) (*Empty, error)
}

// ServiceDesc describes securestorage.v1.SecureStorage for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SecureStorageServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SetItem",
			Handler:    unaryHandler(FullMethodSetItem, SecureStorageServer.SetItem),
		},
		{
			MethodName: "GetItem",
			Handler:    unaryHandler(FullMethodGetItem, SecureStorageServer.GetItem),
		},
		{
			MethodName: "RemoveItem",
			Handler:    unaryHandler(FullMethodRemoveItem, SecureStorageServer.RemoveItem),
		},
		{
			MethodName: "ClearItemWithPrefix",
			Handler:    unaryHandler(FullMethodClearItemWithPrefix, SecureStorageServer.ClearItemWithPrefix),
		},
		{
			MethodName: "GetPrefixedKeys",
			Handler:    unaryHandler(FullMethodGetPrefixedKeys, SecureStorageServer.GetPrefixedKeys),
		},
		{
			MethodName: "SetSynchronizeKeychain",
			Handler:    unaryHandler(FullMethodSetSynchronizeKeychain, SecureStorageServer.SetSynchronizeKeychain),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "securestorage/v1/secure_storage.proto",
}

// unaryHandler adapts a typed server method to grpc.MethodHandler. A
// request that cannot be decoded fails with InvalidData before any
// interceptor runs.
func unaryHandler[Req, Resp any](fullMethod string,
	call func(SecureStorageServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, toStatus(ctx, app.NewInvalidData(err))
		}
		if interceptor == nil {
			return call(srv.(SecureStorageServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SecureStorageServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
