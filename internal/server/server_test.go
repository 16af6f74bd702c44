package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/config"
	"github.com/MKhiriev/go-secure-storage/internal/handler"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func newTestServer(t *testing.T, cfg config.Server) *server {
	t.Helper()

	items := mock.NewMockItemStore(gomock.NewController(t))
	handlers, err := handler.NewHandlers(items, config.StructuredConfig{Server: cfg}, nil, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoTransports(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	items := mock.NewMockItemStore(gomock.NewController(t))
	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	handlers, err := handler.NewHandlers(items, config.StructuredConfig{Server: cfg}, nil, logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, cfg, logger.Nop())
	require.Error(t, err)
}

func TestRun_ServesBothTransportsUntilCancelled(t *testing.T) {
	srv := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"})
	httpAddr, grpcAddr := srv.addrs()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	resp, err := http.Get("http://" + httpAddr.String() + "/api/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	conn, err := grpc.NewClient(grpcAddr.String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	checkCtx, checkCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer checkCancel()
	health, err := healthpb.NewHealthClient(conn).Check(checkCtx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, health.GetStatus())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}

	_, err = http.Get("http://" + httpAddr.String() + "/api/health")
	assert.Error(t, err)
}

func TestShutdown_Idempotent(t *testing.T) {
	srv := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0"})

	srv.Shutdown()
	srv.Shutdown()

	err := srv.Run(context.Background())
	assert.NoError(t, err)
}
