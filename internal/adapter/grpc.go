package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/config"
	myGRPC "github.com/MKhiriev/go-secure-storage/internal/handler/grpc"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/service"
	"github.com/MKhiriev/go-secure-storage/internal/utils"
	"github.com/MKhiriev/go-secure-storage/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// GRPCItemStore is an ItemStore served by a daemon's gRPC service. Close
// releases the connection.
type GRPCItemStore struct {
	conn    *grpc.ClientConn
	tokens  *tokenMinter
	timeout time.Duration

	logger *logger.Logger
}

// NewGRPCItemStore connects lazily to cfg.Adapter.GRPCAddress. Extra dial
// options are applied after the defaults.
func NewGRPCItemStore(cfg config.ClientConfig, logger *logger.Logger, opts ...grpc.DialOption) (*GRPCItemStore, error) {
	store := &GRPCItemStore{
		tokens:  newTokenMinter(cfg.App),
		timeout: cfg.Adapter.RequestTimeout,
		logger:  logger,
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(myGRPC.CodecName)),
		grpc.WithUnaryInterceptor(store.withMetadata),
	}, opts...)

	conn, err := grpc.NewClient(cfg.Adapter.GRPCAddress, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("error creating gRPC client for %s: %w", cfg.Adapter.GRPCAddress, err)
	}
	store.conn = conn

	return store, nil
}

func (g *GRPCItemStore) Close() error {
	return g.conn.Close()
}

func (g *GRPCItemStore) SetItem(ctx context.Context, request models.SetItemRequest) error {
	return g.invoke(ctx, myGRPC.FullMethodSetItem, &request, &myGRPC.Empty{})
}

func (g *GRPCItemStore) GetItem(ctx context.Context, request models.GetItemRequest) (models.GetItemResponse, error) {
	var response models.GetItemResponse
	err := g.invoke(ctx, myGRPC.FullMethodGetItem, &request, &response)
	return response, err
}

func (g *GRPCItemStore) RemoveItem(ctx context.Context, request models.RemoveItemRequest) (models.RemoveItemResponse, error) {
	var response models.RemoveItemResponse
	err := g.invoke(ctx, myGRPC.FullMethodRemoveItem, &request, &response)
	return response, err
}

func (g *GRPCItemStore) ClearItemsWithPrefix(ctx context.Context, request models.ClearItemsRequest) error {
	return g.invoke(ctx, myGRPC.FullMethodClearItemWithPrefix, &request, &myGRPC.Empty{})
}

func (g *GRPCItemStore) GetPrefixedKeys(ctx context.Context, request models.PrefixedKeysRequest) (models.PrefixedKeysResponse, error) {
	var response models.PrefixedKeysResponse
	if err := g.invoke(ctx, myGRPC.FullMethodGetPrefixedKeys, &request, &response); err != nil {
		return response, err
	}
	if response.Keys == nil {
		response.Keys = []string{}
	}
	return response, nil
}

func (g *GRPCItemStore) SetSynchronizeKeychain(ctx context.Context, request models.SynchronizeRequest) error {
	return g.invoke(ctx, myGRPC.FullMethodSetSynchronizeKeychain, &request, &myGRPC.Empty{})
}

func (g *GRPCItemStore) invoke(ctx context.Context, method string, request, response any) error {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	var trailer metadata.MD
	err := g.conn.Invoke(ctx, method, request, response, grpc.Trailer(&trailer))
	if err != nil {
		g.logger.Debug().Err(err).Str("method", method).Msg("call failed")
	}
	return mapGRPCError(err, trailer)
}

// withMetadata attaches the bearer token and a fresh trace id to every call.
func (g *GRPCItemStore) withMetadata(ctx context.Context, method string, req, reply any,
	cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	token, err := g.tokens.Token()
	if err != nil {
		return service.MapError(err)
	}

	pairs := []string{myGRPC.TraceIDMetadata, utils.NewTraceID()}
	if token != "" {
		pairs = append(pairs, "authorization", "Bearer "+token)
	}

	return invoker(metadata.AppendToOutgoingContext(ctx, pairs...), method, req, reply, cc, opts...)
}
