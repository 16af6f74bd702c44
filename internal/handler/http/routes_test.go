package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-secure-storage/internal/mock"
	"github.com/MKhiriev/go-secure-storage/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInit_StorageRoutesAreRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockItemStore(ctrl)

	items.EXPECT().SetItem(gomock.Any(), gomock.Any()).Return(nil)
	items.EXPECT().GetItem(gomock.Any(), gomock.Any()).Return(models.GetItemResponse{}, nil)
	items.EXPECT().RemoveItem(gomock.Any(), gomock.Any()).Return(models.RemoveItemResponse{}, nil)
	items.EXPECT().ClearItemsWithPrefix(gomock.Any(), gomock.Any()).Return(nil)
	items.EXPECT().GetPrefixedKeys(gomock.Any(), gomock.Any()).Return(models.PrefixedKeysResponse{}, nil)
	items.EXPECT().SetSynchronizeKeychain(gomock.Any(), gomock.Any()).Return(nil)

	router := newRouter(t, items)

	for _, rpc := range []string{
		RPCSetItem, RPCGetItem, RPCRemoveItem,
		RPCClearItemWithPrefix, RPCGetPrefixedKeys, RPCSetSynchronizeKeychain,
	} {
		t.Run(rpc, func(t *testing.T) {
			rr := postJSON(t, router, rpc, map[string]any{"prefixedKey": "secure-storage_a", "prefix": "secure-storage_"})
			assert.Less(t, rr.Code, http.StatusBadRequest)
		})
	}
}

func TestInit_UnknownRoutesAndMethods(t *testing.T) {
	router := newRouter(t, mock.NewMockItemStore(gomock.NewController(t)))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/api/health", http.StatusOK},
		{"get on storage route", http.MethodGet, StoragePath + RPCGetItem, http.StatusNotFound},
		{"delete on storage route", http.MethodDelete, StoragePath + RPCRemoveItem, http.StatusNotFound},
		{"unknown rpc", http.MethodPost, StoragePath + "drop_everything", http.StatusNotFound},
		{"metrics disabled", http.MethodGet, "/metrics", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequestWithContext(context.Background(), tt.method, tt.path, strings.NewReader("{}"))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
