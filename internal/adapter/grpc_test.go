package adapter

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/app"
	"github.com/MKhiriev/go-secure-storage/internal/config"
	myGRPC "github.com/MKhiriev/go-secure-storage/internal/handler/grpc"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/mock"
	"github.com/MKhiriev/go-secure-storage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newGRPCPair(t *testing.T, items *mock.MockItemStore, serverApp, clientApp config.App) *GRPCItemStore {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := myGRPC.NewHandler(items, config.StructuredConfig{App: serverApp}, nil, logger.Nop()).Init()
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	store, err := NewGRPCItemStore(config.ClientConfig{
		App:     clientApp,
		Adapter: config.Adapter{GRPCAddress: "passthrough:///bufnet", RequestTimeout: 5 * time.Second},
	}, logger.Nop(), grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestGRPCItemStore_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockItemStore(ctrl)
	store := newGRPCPair(t, items, authApp("shared"), authApp("shared"))
	ctx := context.Background()

	setReq := models.SetItemRequest{
		PrefixedKey: "secure-storage_k",
		Data:        models.StringPtr(""),
		Access:      models.AccessibleAfterFirstUnlockThisDeviceOnly,
	}
	items.EXPECT().SetItem(gomock.Any(), setReq).Return(nil)
	items.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(models.GetItemResponse{}, nil)
	items.EXPECT().RemoveItem(gomock.Any(), gomock.Any()).Return(models.RemoveItemResponse{}, nil)
	items.EXPECT().ClearItemsWithPrefix(gomock.Any(), gomock.Any()).Return(nil)
	items.EXPECT().GetPrefixedKeys(gomock.Any(), gomock.Any()).
		Return(models.PrefixedKeysResponse{Keys: []string{"secure-storage_k"}}, nil)
	items.EXPECT().SetSynchronizeKeychain(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, store.SetItem(ctx, setReq))

	got, err := store.GetItem(ctx, models.GetItemRequest{PrefixedKey: "secure-storage_k"})
	require.NoError(t, err)
	assert.Nil(t, got.Data)

	removed, err := store.RemoveItem(ctx, models.RemoveItemRequest{PrefixedKey: "secure-storage_k"})
	require.NoError(t, err)
	assert.False(t, removed.Success)

	require.NoError(t, store.ClearItemsWithPrefix(ctx, models.ClearItemsRequest{Prefix: "secure-storage_"}))

	keys, err := store.GetPrefixedKeys(ctx, models.PrefixedKeysRequest{Prefix: "secure-storage_"})
	require.NoError(t, err)
	assert.Equal(t, []string{"secure-storage_k"}, keys.Keys)

	require.NoError(t, store.SetSynchronizeKeychain(ctx, models.SynchronizeRequest{Sync: true}))
}

func TestGRPCItemStore_RebuildsStorageErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantMsg string
	}{
		{"missing key", app.NewMissingKey(nil), app.ErrMissingKey, app.MsgMissingKey},
		{"invalid data", app.NewInvalidData(nil), app.ErrInvalidData, app.MsgInvalidData},
		{"os error", app.NewOSError("StoreBackend", nil), app.ErrOSError, "An OS error occurred (StoreBackend)"},
		{"unknown", errors.New("boom"), app.ErrUnknownError, "An unknown error occurred: errorString"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			items := mock.NewMockItemStore(ctrl)
			items.EXPECT().RemoveItem(gomock.Any(), gomock.Any()).Return(models.RemoveItemResponse{}, tt.err)
			store := newGRPCPair(t, items, config.App{}, config.App{})

			_, err := store.RemoveItem(context.Background(), models.RemoveItemRequest{PrefixedKey: "k"})

			var storageErr *app.StorageError
			require.ErrorAs(t, err, &storageErr)
			assert.ErrorIs(t, err, tt.wantIs)
			assert.Equal(t, tt.wantMsg, storageErr.Message)
		})
	}
}

func TestGRPCItemStore_AuthFailureIsUnknown(t *testing.T) {
	items := mock.NewMockItemStore(gomock.NewController(t))
	store := newGRPCPair(t, items, authApp("server-key"), authApp("client-key"))

	err := store.SetSynchronizeKeychain(context.Background(), models.SynchronizeRequest{})

	var storageErr *app.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, app.KindUnknownError, storageErr.Kind)
	assert.Equal(t, "An unknown error occurred: Unauthenticated", storageErr.Message)
}

func TestMapGRPCError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		trailer  metadata.MD
		wantKind app.Kind
		wantMsg  string
	}{
		{
			name:     "trailer wins",
			err:      status.Error(codes.Internal, "An OS error occurred (Keychain)"),
			trailer:  metadata.Pairs(myGRPC.ErrorCodeTrailer, app.CodeOSError),
			wantKind: app.KindOSError,
			wantMsg:  "An OS error occurred (Keychain)",
		},
		{
			name:     "no trailer",
			err:      status.Error(codes.Unavailable, "connection refused"),
			wantKind: app.KindUnknownError,
			wantMsg:  "An unknown error occurred: Unavailable",
		},
		{
			name:     "not a status",
			err:      context.DeadlineExceeded,
			wantKind: app.KindUnknownError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapGRPCError(tt.err, tt.trailer)

			var storageErr *app.StorageError
			require.ErrorAs(t, err, &storageErr)
			assert.Equal(t, tt.wantKind, storageErr.Kind)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, storageErr.Message)
			}
		})
	}

	assert.NoError(t, mapGRPCError(nil, nil))
}
