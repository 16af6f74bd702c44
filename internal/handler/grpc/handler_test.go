package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/app"
	"github.com/MKhiriev/go-secure-storage/internal/config"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/metrics"
	"github.com/MKhiriev/go-secure-storage/internal/mock"
	"github.com/MKhiriev/go-secure-storage/internal/service"
	"github.com/MKhiriev/go-secure-storage/internal/utils"
	"github.com/MKhiriev/go-secure-storage/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// dial serves h over an in-memory listener and returns a client connection
// using the JSON codec.
func dial(t *testing.T, h *Handler) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := h.Init()
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func newTestServer(t *testing.T, items service.ItemStore, cfg ...func(*config.StructuredConfig)) *grpc.ClientConn {
	t.Helper()

	c := config.StructuredConfig{}
	for _, fn := range cfg {
		fn(&c)
	}
	return dial(t, NewHandler(items, c, nil, logger.Nop()))
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestHandler_RoundTrips(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockItemStore(ctrl)
	conn := newTestServer(t, items)
	ctx := testContext(t)

	setReq := models.SetItemRequest{
		PrefixedKey: "secure-storage_token",
		Data:        models.StringPtr("v"),
		Sync:        models.BoolPtr(true),
		Access:      models.AccessibleWhenPasscodeSetThisDeviceOnly,
	}

	gomock.InOrder(
		items.EXPECT().SetItem(gomock.Any(), setReq).Return(nil),
		items.EXPECT().GetItem(gomock.Any(), models.GetItemRequest{PrefixedKey: "secure-storage_token", Sync: models.BoolPtr(true)}).
			Return(models.GetItemResponse{Data: models.StringPtr("v")}, nil),
		items.EXPECT().GetPrefixedKeys(gomock.Any(), models.PrefixedKeysRequest{Prefix: "secure-storage_", Sync: models.BoolPtr(true)}).
			Return(models.PrefixedKeysResponse{}, nil),
		items.EXPECT().RemoveItem(gomock.Any(), models.RemoveItemRequest{PrefixedKey: "secure-storage_token", Sync: models.BoolPtr(true)}).
			Return(models.RemoveItemResponse{Success: true}, nil),
		items.EXPECT().ClearItemsWithPrefix(gomock.Any(), models.ClearItemsRequest{Prefix: "secure-storage_", Sync: models.BoolPtr(true)}).
			Return(nil),
		items.EXPECT().SetSynchronizeKeychain(gomock.Any(), models.SynchronizeRequest{Sync: true}).Return(nil),
	)

	require.NoError(t, conn.Invoke(ctx, FullMethodSetItem, &setReq, &Empty{}))

	var got models.GetItemResponse
	require.NoError(t, conn.Invoke(ctx, FullMethodGetItem,
		&models.GetItemRequest{PrefixedKey: "secure-storage_token", Sync: models.BoolPtr(true)}, &got))
	require.NotNil(t, got.Data)
	assert.Equal(t, "v", *got.Data)

	var keys models.PrefixedKeysResponse
	require.NoError(t, conn.Invoke(ctx, FullMethodGetPrefixedKeys,
		&models.PrefixedKeysRequest{Prefix: "secure-storage_", Sync: models.BoolPtr(true)}, &keys))
	assert.NotNil(t, keys.Keys)
	assert.Empty(t, keys.Keys)

	var removed models.RemoveItemResponse
	require.NoError(t, conn.Invoke(ctx, FullMethodRemoveItem,
		&models.RemoveItemRequest{PrefixedKey: "secure-storage_token", Sync: models.BoolPtr(true)}, &removed))
	assert.True(t, removed.Success)

	require.NoError(t, conn.Invoke(ctx, FullMethodClearItemWithPrefix,
		&models.ClearItemsRequest{Prefix: "secure-storage_", Sync: models.BoolPtr(true)}, &Empty{}))
	require.NoError(t, conn.Invoke(ctx, FullMethodSetSynchronizeKeychain,
		&models.SynchronizeRequest{Sync: true}, &Empty{}))
}

func TestHandler_ErrorsCarryStatusAndTrailer(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    codes.Code
		wantTrailer string
		wantMessage string
	}{
		{"missing key", app.NewMissingKey(nil), codes.InvalidArgument, app.CodeMissingKey, app.MsgMissingKey},
		{"invalid data", app.NewInvalidData(nil), codes.DataLoss, app.CodeInvalidData, app.MsgInvalidData},
		{"os error", app.NewOSError("KeyVault", nil), codes.Internal, app.CodeOSError, "An OS error occurred (KeyVault)"},
		{"unknown", errors.New("boom"), codes.Unknown, app.CodeUnknownError, "An unknown error occurred: errorString"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			items := mock.NewMockItemStore(ctrl)
			items.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(models.GetItemResponse{}, tt.err)
			conn := newTestServer(t, items)

			var trailer metadata.MD
			err := conn.Invoke(testContext(t), FullMethodGetItem,
				&models.GetItemRequest{PrefixedKey: "k"}, &models.GetItemResponse{}, grpc.Trailer(&trailer))

			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMessage, st.Message())
			assert.Equal(t, []string{tt.wantTrailer}, trailer.Get(ErrorCodeTrailer))
		})
	}
}

func TestHandler_UndecodableRequestIsInvalidData(t *testing.T) {
	conn := newTestServer(t, mock.NewMockItemStore(gomock.NewController(t)))

	var trailer metadata.MD
	err := conn.Invoke(testContext(t), FullMethodGetItem,
		map[string]any{"prefixedKey": 42}, &models.GetItemResponse{}, grpc.Trailer(&trailer))

	assert.Equal(t, codes.DataLoss, status.Code(err))
	assert.Equal(t, []string{app.CodeInvalidData}, trailer.Get(ErrorCodeTrailer))
}

func TestHandler_Auth(t *testing.T) {
	valid, err := utils.GenerateJWTToken("iss", "test-client", time.Hour, "sign-key")
	require.NoError(t, err)
	foreign, err := utils.GenerateJWTToken("iss", "test-client", time.Hour, "other-key")
	require.NoError(t, err)

	tests := []struct {
		name     string
		md       metadata.MD
		wantCode codes.Code
	}{
		{"no metadata", nil, codes.Unauthenticated},
		{"not bearer", metadata.Pairs("authorization", "Basic x"), codes.Unauthenticated},
		{"foreign key", metadata.Pairs("authorization", "Bearer "+foreign.String()), codes.Unauthenticated},
		{"valid", metadata.Pairs("authorization", "Bearer "+valid.String()), codes.OK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			items := mock.NewMockItemStore(ctrl)
			if tt.wantCode == codes.OK {
				items.EXPECT().SetSynchronizeKeychain(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, _ models.SynchronizeRequest) error {
						client, ok := utils.GetClientFromContext(ctx)
						assert.True(t, ok)
						assert.Equal(t, "test-client", client)
						return nil
					})
			}
			conn := newTestServer(t, items, func(c *config.StructuredConfig) {
				c.App.TokenSignKey = "sign-key"
				c.App.TokenIssuer = "iss"
			})

			ctx := testContext(t)
			if tt.md != nil {
				ctx = metadata.NewOutgoingContext(ctx, tt.md)
			}
			err := conn.Invoke(ctx, FullMethodSetSynchronizeKeychain, &models.SynchronizeRequest{}, &Empty{})

			assert.Equal(t, tt.wantCode, status.Code(err))
		})
	}
}

func TestHandler_RateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockItemStore(ctrl)
	items.EXPECT().SetSynchronizeKeychain(gomock.Any(), gomock.Any()).Return(nil)

	conn := newTestServer(t, items, func(c *config.StructuredConfig) {
		c.Server.RateLimit = 0.001
		c.Server.RateBurst = 1
	})
	ctx := testContext(t)

	require.NoError(t, conn.Invoke(ctx, FullMethodSetSynchronizeKeychain, &models.SynchronizeRequest{}, &Empty{}))
	err := conn.Invoke(ctx, FullMethodSetSynchronizeKeychain, &models.SynchronizeRequest{}, &Empty{})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestHandler_TraceIDHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockItemStore(ctrl)
	items.EXPECT().SetSynchronizeKeychain(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	conn := newTestServer(t, items)

	var header metadata.MD
	ctx := metadata.AppendToOutgoingContext(testContext(t), TraceIDMetadata, "trace-123")
	require.NoError(t, conn.Invoke(ctx, FullMethodSetSynchronizeKeychain,
		&models.SynchronizeRequest{}, &Empty{}, grpc.Header(&header)))
	assert.Equal(t, []string{"trace-123"}, header.Get(TraceIDMetadata))

	header = nil
	require.NoError(t, conn.Invoke(testContext(t), FullMethodSetSynchronizeKeychain,
		&models.SynchronizeRequest{}, &Empty{}, grpc.Header(&header)))
	require.Len(t, header.Get(TraceIDMetadata), 1)
	assert.NotEmpty(t, header.Get(TraceIDMetadata)[0])
}

func TestHandler_Metrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockItemStore(ctrl)
	items.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(models.GetItemResponse{}, nil)
	items.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(models.GetItemResponse{}, app.NewMissingKey(nil))

	reg := prometheus.NewRegistry()
	conn := dial(t, NewHandler(items, config.StructuredConfig{}, metrics.NewMetricsWithRegistry(reg), logger.Nop()))
	ctx := testContext(t)

	_ = conn.Invoke(ctx, FullMethodGetItem, &models.GetItemRequest{PrefixedKey: "k"}, &models.GetItemResponse{})
	_ = conn.Invoke(ctx, FullMethodGetItem, &models.GetItemRequest{}, &models.GetItemResponse{})

	count, err := testutil.GatherAndCount(reg, "secure_storage_rpc_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestHandler_HealthBypassesAuth(t *testing.T) {
	conn := newTestServer(t, mock.NewMockItemStore(gomock.NewController(t)), func(c *config.StructuredConfig) {
		c.App.TokenSignKey = "sign-key"
		c.App.TokenIssuer = "iss"
	})

	resp, err := healthpb.NewHealthClient(conn).Check(testContext(t),
		&healthpb.HealthCheckRequest{Service: ServiceName}, grpc.CallContentSubtype("proto"))

	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ok", nil, metrics.CodeOK},
		{"missing key", status.Error(codes.InvalidArgument, ""), app.CodeMissingKey},
		{"invalid data", status.Error(codes.DataLoss, ""), app.CodeInvalidData},
		{"os error", status.Error(codes.Internal, ""), app.CodeOSError},
		{"unauthenticated", errInvalidToken, "Unauthenticated"},
		{"rate limited", errRateLimited, "ResourceExhausted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outcome(tt.err))
		})
	}
}

func TestStatusCodeRoundTrip(t *testing.T) {
	for _, kind := range []app.Kind{app.KindMissingKey, app.KindInvalidData, app.KindOSError, app.KindUnknownError} {
		got, ok := KindFromStatusCode(StatusCode(kind))
		assert.True(t, ok)
		assert.Equal(t, kind, got)
	}

	_, ok := KindFromStatusCode(codes.Unavailable)
	assert.False(t, ok)
}
