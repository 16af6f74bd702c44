// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"errors"
	"reflect"

	"github.com/MKhiriev/go-secure-storage/internal/app"
	"github.com/MKhiriev/go-secure-storage/internal/crypto"
	"github.com/MKhiriev/go-secure-storage/internal/keychain"
	"github.com/MKhiriev/go-secure-storage/internal/store"
	"github.com/MKhiriev/go-secure-storage/internal/validators"
)

// errorOrigin binds a lower-layer sentinel to the kind it collapses into and
// the origin name reported for it.
type errorOrigin struct {
	target error
	kind   app.Kind
	origin string
}

// errorOrigins is checked in order; the first match wins. An unrecoverable
// key is listed before the vault failure it may wrap.
var errorOrigins = []errorOrigin{
	{validators.ErrEmptyKey, app.KindMissingKey, ""},

	{validators.ErrNullData, app.KindInvalidData, ""},
	{validators.ErrInvalidAccess, app.KindInvalidData, ""},
	{crypto.ErrInvalidCiphertext, app.KindInvalidData, ""},

	{crypto.ErrKeyUnrecoverable, app.KindOSError, "KeyUnrecoverable"},
	{crypto.ErrAuthentication, app.KindOSError, "AuthenticationFailed"},
	{crypto.ErrKeyVault, app.KindOSError, "KeyVault"},
	{crypto.ErrRandom, app.KindOSError, "RandomSource"},
	{crypto.ErrInvalidKey, app.KindOSError, "InvalidKey"},
	{store.ErrBackend, app.KindOSError, "StoreBackend"},
	{store.ErrStoreClosed, app.KindOSError, "StoreClosed"},
	{keychain.ErrUnsupported, app.KindOSError, "KeychainUnsupported"},
	{keychain.ErrKeychain, app.KindOSError, "Keychain"},
}

// MapError collapses err into one of the four storage error kinds. A nil err
// yields nil and a *app.StorageError passes through unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	return mapError(err)
}

func mapError(err error) *app.StorageError {
	var storageErr *app.StorageError
	if errors.As(err, &storageErr) {
		return storageErr
	}

	for _, o := range errorOrigins {
		if !errors.Is(err, o.target) {
			continue
		}
		switch o.kind {
		case app.KindMissingKey:
			return app.NewMissingKey(err)
		case app.KindInvalidData:
			return app.NewInvalidData(err)
		default:
			return app.NewOSError(o.origin, err)
		}
	}

	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return app.NewInvalidData(err)
	}

	return app.NewUnknownError(originOf(err), err)
}

// originOf names the innermost error by its Go type, without package path
// or pointer marker.
func originOf(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}

	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
