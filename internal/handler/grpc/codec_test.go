package grpc

import (
	"testing"

	"github.com/MKhiriev/go-secure-storage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestJSONCodec_Registered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, CodecName, codec.Name())
}

func TestJSONCodec_NullDataSurvives(t *testing.T) {
	codec := jsonCodec{}

	raw, err := codec.Marshal(&models.SetItemRequest{PrefixedKey: "k"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"prefixedKey":"k","data":null,"access":0}`, string(raw))

	var decoded models.SetItemRequest
	require.NoError(t, codec.Unmarshal(raw, &decoded))
	assert.Nil(t, decoded.Data)
}

func TestJSONCodec_AccessAndSync(t *testing.T) {
	codec := jsonCodec{}
	in := models.SetItemRequest{
		PrefixedKey: "k",
		Data:        models.StringPtr("v"),
		Sync:        models.BoolPtr(false),
		Access:      models.AccessibleWhenPasscodeSetThisDeviceOnly,
	}

	raw, err := codec.Marshal(&in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"prefixedKey":"k","data":"v","sync":false,"access":4}`, string(raw))

	var decoded models.SetItemRequest
	require.NoError(t, codec.Unmarshal(raw, &decoded))
	assert.Equal(t, in, decoded)
}
