package adapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secure-storage/internal/app"
	myGRPC "github.com/MKhiriev/go-secure-storage/internal/handler/grpc"
	"github.com/MKhiriev/go-secure-storage/internal/service"
	"github.com/MKhiriev/go-secure-storage/models"
	"github.com/go-resty/resty/v2"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// mapHTTPError returns nil for a 2xx answer. Otherwise the body is read as
// models.ErrorResponse; an answer without one (auth, rate limit, proxy
// errors) becomes UnknownError named after the status.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var payload models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Code != "" {
		return app.FromWire(payload.Code, payload.Message)
	}

	text := http.StatusText(resp.StatusCode())
	if text == "" {
		text = resp.Status()
	}
	return app.NewUnknownError(text, errors.New(resp.Status()))
}

// mapGRPCError rebuilds the StorageError of a failed call from its status
// and x-error-code trailer. Statuses without the trailer come from the
// transport or an interceptor and become UnknownError named after the code.
func mapGRPCError(err error, trailer metadata.MD) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return service.MapError(err)
	}

	if codes := trailer.Get(myGRPC.ErrorCodeTrailer); len(codes) > 0 {
		return app.FromWire(codes[0], st.Message())
	}

	return app.NewUnknownError(st.Code().String(), err)
}
