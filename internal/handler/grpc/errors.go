package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-secure-storage/internal/app"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ErrorCodeTrailer carries the StorageError code of a failed call.
const ErrorCodeTrailer = "x-error-code"

var (
	errMissingMetadata = status.Error(codes.Unauthenticated, "missing metadata")
	errInvalidToken    = status.Error(codes.Unauthenticated, "invalid or expired token")
	errRateLimited     = status.Error(codes.ResourceExhausted, "too many requests")
)

var kindStatusCodes = map[app.Kind]codes.Code{
	app.KindMissingKey:   codes.InvalidArgument,
	app.KindInvalidData:  codes.DataLoss,
	app.KindOSError:      codes.Internal,
	app.KindUnknownError: codes.Unknown,
}

// StatusCode returns the gRPC status code a StorageError of kind k is sent with.
func StatusCode(k app.Kind) codes.Code {
	if c, ok := kindStatusCodes[k]; ok {
		return c
	}
	return codes.Unknown
}

// KindFromStatusCode is the inverse of StatusCode. ok is false for codes
// that are not produced from a StorageError.
func KindFromStatusCode(c codes.Code) (app.Kind, bool) {
	for kind, code := range kindStatusCodes {
		if code == c {
			return kind, true
		}
	}
	return app.KindUnknownError, false
}

// toStatus turns err into a status error and attaches the error code
// trailer to the call in ctx.
func toStatus(ctx context.Context, err error) error {
	var storageErr *app.StorageError
	if !errors.As(service.MapError(err), &storageErr) {
		storageErr = app.NewUnknownError("handler", err)
	}

	if terr := grpc.SetTrailer(ctx, metadata.Pairs(ErrorCodeTrailer, storageErr.Code())); terr != nil {
		logger.FromContext(ctx).Err(terr).Str("func", "toStatus").Msg("failed to set error code trailer")
	}

	return status.Error(StatusCode(storageErr.Kind), storageErr.Message)
}
