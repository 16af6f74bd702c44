package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-secure-storage/internal/app"
	"github.com/MKhiriev/go-secure-storage/internal/config"
	myHTTP "github.com/MKhiriev/go-secure-storage/internal/handler/http"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/service"
	"github.com/MKhiriev/go-secure-storage/internal/utils"
	"github.com/MKhiriev/go-secure-storage/models"
)

// HTTPItemStore is an ItemStore served by a daemon's HTTP routes.
type HTTPItemStore struct {
	client *utils.HTTPClient
	tokens *tokenMinter
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPItemStore returns an HTTPItemStore for cfg.Adapter.HTTPAddress.
// Requests are signed when cfg.App.TokenSignKey is set.
func NewHTTPItemStore(cfg config.ClientConfig, logger *logger.Logger) (*HTTPItemStore, error) {
	client, err := utils.NewHTTPClient(cfg.Adapter.HTTPAddress, cfg.Adapter.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	store := &HTTPItemStore{
		client: client,
		tokens: newTokenMinter(cfg.App),
		logger: logger,
	}
	if cfg.App.TokenSignKey != "" {
		store.hasher = utils.NewHasher(cfg.App.TokenSignKey)
	}

	return store, nil
}

func (h *HTTPItemStore) SetItem(ctx context.Context, request models.SetItemRequest) error {
	return h.call(ctx, myHTTP.RPCSetItem, request, nil)
}

func (h *HTTPItemStore) GetItem(ctx context.Context, request models.GetItemRequest) (models.GetItemResponse, error) {
	var response models.GetItemResponse
	err := h.call(ctx, myHTTP.RPCGetItem, request, &response)
	return response, err
}

func (h *HTTPItemStore) RemoveItem(ctx context.Context, request models.RemoveItemRequest) (models.RemoveItemResponse, error) {
	var response models.RemoveItemResponse
	err := h.call(ctx, myHTTP.RPCRemoveItem, request, &response)
	return response, err
}

func (h *HTTPItemStore) ClearItemsWithPrefix(ctx context.Context, request models.ClearItemsRequest) error {
	return h.call(ctx, myHTTP.RPCClearItemWithPrefix, request, nil)
}

func (h *HTTPItemStore) GetPrefixedKeys(ctx context.Context, request models.PrefixedKeysRequest) (models.PrefixedKeysResponse, error) {
	var response models.PrefixedKeysResponse
	if err := h.call(ctx, myHTTP.RPCGetPrefixedKeys, request, &response); err != nil {
		return response, err
	}
	if response.Keys == nil {
		response.Keys = []string{}
	}
	return response, nil
}

func (h *HTTPItemStore) SetSynchronizeKeychain(ctx context.Context, request models.SynchronizeRequest) error {
	return h.call(ctx, myHTTP.RPCSetSynchronizeKeychain, request, nil)
}

// call posts body to the rpc route and decodes a 2xx answer into result
// when result is non-nil. Every failure is a *app.StorageError.
func (h *HTTPItemStore) call(ctx context.Context, rpc string, body, result any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return service.MapError(err)
	}

	traceID := utils.NewTraceID()
	request := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(myHTTP.TraceIDHeader, traceID).
		SetBody(raw)

	token, err := h.tokens.Token()
	if err != nil {
		return service.MapError(err)
	}
	if token != "" {
		request.SetHeader("Authorization", "Bearer "+token)
		request.SetHeader(utils.HashHeader, h.hasher.Sum(raw))
	}

	resp, err := request.Post(myHTTP.StoragePath + rpc)
	if err != nil {
		h.logger.Err(err).Str("func", "*HTTPItemStore.call").Str("rpc", rpc).Str("trace_id", traceID).Msg("request failed")
		return service.MapError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("rpc", rpc).Str("trace_id", traceID).Int("status", resp.StatusCode()).Msg("call failed")
		return err
	}

	if result != nil {
		if err = json.Unmarshal(resp.Body(), result); err != nil {
			return app.NewInvalidData(err)
		}
	}
	return nil
}
