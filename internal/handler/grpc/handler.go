package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/config"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/metrics"
	"github.com/MKhiriev/go-secure-storage/internal/service"
	"github.com/MKhiriev/go-secure-storage/models"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the gRPC transport over one ItemStore. It implements
// [SecureStorageServer].
type Handler struct {
	items   service.ItemStore
	metrics *metrics.Metrics

	tokenSignKey string
	tokenIssuer  string

	limiter        *rate.Limiter
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds a Handler. m may be nil.
func NewHandler(items service.ItemStore, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Handler {
	h := &Handler{
		items:          items,
		metrics:        m,
		tokenSignKey:   cfg.App.TokenSignKey,
		tokenIssuer:    cfg.App.TokenIssuer,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
	if cfg.Server.RateLimit > 0 {
		burst := cfg.Server.RateBurst
		if burst <= 0 {
			burst = int(cfg.Server.RateLimit) + 1
		}
		h.limiter = rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), burst)
	}

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Init returns a grpc.Server with the storage service, the standard health
// service and the interceptor chain installed. Extra server options are
// appended after the defaults.
func (h *Handler) Init(opts ...grpc.ServerOption) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{
		h.recoverer,
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withRateLimit,
	}
	if h.requestTimeout > 0 {
		interceptors = append(interceptors, h.withTimeout)
	}
	if h.tokenSignKey != "" {
		interceptors = append(interceptors, h.auth)
	}

	for i, interceptor := range interceptors {
		interceptors[i] = storageOnly(interceptor)
	}

	server := grpc.NewServer(append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(interceptors...)}, opts...)...)
	server.RegisterService(&ServiceDesc, h)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)

	return server
}

func (h *Handler) SetItem(ctx context.Context, request *models.SetItemRequest) (*Empty, error) {
	if err := h.items.SetItem(ctx, *request); err != nil {
		return nil, toStatus(ctx, err)
	}
	return &Empty{}, nil
}

func (h *Handler) GetItem(ctx context.Context, request *models.GetItemRequest) (*models.GetItemResponse, error) {
	response, err := h.items.GetItem(ctx, *request)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &response, nil
}

func (h *Handler) RemoveItem(ctx context.Context, request *models.RemoveItemRequest) (*models.RemoveItemResponse, error) {
	response, err := h.items.RemoveItem(ctx, *request)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &response, nil
}

func (h *Handler) ClearItemWithPrefix(ctx context.Context, request *models.ClearItemsRequest) (*Empty, error) {
	if err := h.items.ClearItemsWithPrefix(ctx, *request); err != nil {
		return nil, toStatus(ctx, err)
	}
	return &Empty{}, nil
}

func (h *Handler) GetPrefixedKeys(ctx context.Context, request *models.PrefixedKeysRequest) (*models.PrefixedKeysResponse, error) {
	response, err := h.items.GetPrefixedKeys(ctx, *request)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	if response.Keys == nil {
		response.Keys = []string{}
	}
	return &response, nil
}

func (h *Handler) SetSynchronizeKeychain(ctx context.Context, request *models.SynchronizeRequest) (*Empty, error) {
	if err := h.items.SetSynchronizeKeychain(ctx, *request); err != nil {
		return nil, toStatus(ctx, err)
	}
	return &Empty{}, nil
}
