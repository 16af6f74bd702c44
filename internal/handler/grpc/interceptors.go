package grpc

import (
	"context"
	"path"
	"runtime/debug"
	"strings"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/metrics"
	"github.com/MKhiriev/go-secure-storage/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	// TraceIDMetadata carries the trace id of a call in both directions.
	TraceIDMetadata = "x-trace-id"

	transportGRPC = "grpc"
)

// rpcNames maps method names to the RPC names used by the HTTP routes so
// both transports share metric labels.
var rpcNames = map[string]string{
	"SetItem":                "set_item",
	"GetItem":                "get_item",
	"RemoveItem":             "remove_item",
	"ClearItemWithPrefix":    "clear_item_with_prefix",
	"GetPrefixedKeys":        "get_prefixed_keys",
	"SetSynchronizeKeychain": "set_synchronize_keychain",
}

// storageOnly applies interceptor to storage service calls only; other
// services registered on the server (health) bypass it.
func storageOnly(interceptor grpc.UnaryServerInterceptor) grpc.UnaryServerInterceptor {
	prefix := "/" + ServiceName + "/"
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !strings.HasPrefix(info.FullMethod, prefix) {
			return handler(ctx, req)
		}
		return interceptor(ctx, req, info, handler)
	}
}

func (h *Handler) recoverer(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().
				Interface("panic", r).
				Str("method", info.FullMethod).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			err = status.Error(codes.Internal, "internal error")
		}
	}()
	return handler(ctx, req)
}

func (h *Handler) withTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(TraceIDMetadata); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = utils.NewTraceID()
	}

	l := h.logger.WithTraceID(traceID)

	if err := grpc.SetHeader(ctx, metadata.Pairs(TraceIDMetadata, traceID)); err != nil {
		l.Err(err).Msg("failed to set trace id header")
	}

	return handler(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	resp, err := handler(ctx, req)

	event := log.Info()
	if st := status.Convert(err); st.Code() == codes.Internal || st.Code() == codes.Unknown {
		event = log.Warn()
	}
	event.
		Str("method", info.FullMethod).
		Str("status", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func (h *Handler) withMetrics(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if h.metrics == nil {
		return handler(ctx, req)
	}

	start := time.Now()
	resp, err := handler(ctx, req)

	rpc := rpcNames[path.Base(info.FullMethod)]
	h.metrics.RecordRequest(transportGRPC, rpc, outcome(err), time.Since(start))

	return resp, err
}

// outcome labels a finished call: "ok", the StorageError code for storage
// failures, or the gRPC code name for failures raised by interceptors.
func outcome(err error) string {
	if err == nil {
		return metrics.CodeOK
	}
	switch c := status.Code(err); c {
	case codes.Unauthenticated, codes.ResourceExhausted, codes.DeadlineExceeded, codes.Canceled:
		return c.String()
	default:
		kind, _ := KindFromStatusCode(c)
		return kind.Code()
	}
}

func (h *Handler) withRateLimit(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if h.limiter != nil && !h.limiter.Allow() {
		logger.FromContext(ctx).Warn().Str("method", info.FullMethod).Msg("rate limit exceeded")
		return nil, errRateLimited
	}
	return handler(ctx, req)
}

func (h *Handler) withTimeout(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()
	return handler(ctx, req)
}

// auth requires "authorization: Bearer <jwt>" metadata signed with the
// configured key and issuer.
func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	log := logger.FromContext(ctx)

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		log.Err(errMissingMetadata).Send()
		return nil, errMissingMetadata
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		log.Error().Msg("empty authorization metadata")
		return nil, errInvalidToken
	}

	tokenString, err := utils.ParseBearerToken(values[0])
	if err != nil {
		log.Err(err).Send()
		return nil, errInvalidToken
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("error occurred during parsing token")
		return nil, errInvalidToken
	}

	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("client", token.Client)
	})
	ctx = utils.WithClient(log.WithContext(ctx), token.Client)

	return handler(ctx, req)
}

