//go:build darwin

package keychain

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-storage/models"
	gokeychain "github.com/keybase/go-keychain"
)

var accessibility = map[models.AccessPolicy]gokeychain.Accessible{
	models.AccessibleWhenUnlocked:                   gokeychain.AccessibleWhenUnlocked,
	models.AccessibleWhenUnlockedThisDeviceOnly:     gokeychain.AccessibleWhenUnlockedThisDeviceOnly,
	models.AccessibleAfterFirstUnlock:               gokeychain.AccessibleAfterFirstUnlock,
	models.AccessibleAfterFirstUnlockThisDeviceOnly: gokeychain.AccessibleAfterFirstUnlockThisDeviceOnly,
	models.AccessibleWhenPasscodeSetThisDeviceOnly:  gokeychain.AccessibleWhenPasscodeSetThisDeviceOnly,
}

// SystemKeychain provides CRUD operations on generic password items of one
// service in the macOS/iOS keychain.
type SystemKeychain struct {
	service string
}

// NewSystemKeychain creates a keychain handle for service.
func NewSystemKeychain(service string) (Keychain, error) {
	return &SystemKeychain{service: service}, nil
}

func synchronizable(sync bool) gokeychain.Synchronizable {
	if sync {
		return gokeychain.SynchronizableYes
	}
	return gokeychain.SynchronizableNo
}

func (k *SystemKeychain) baseItem(account string, sync bool) gokeychain.Item {
	item := gokeychain.NewItem()
	item.SetSecClass(gokeychain.SecClassGenericPassword)
	item.SetService(k.service)
	if account != "" {
		item.SetAccount(account)
	}
	item.SetSynchronizable(synchronizable(sync))
	return item
}

func (k *SystemKeychain) Get(_ context.Context, account string, sync bool) (string, bool, error) {
	query := k.baseItem(account, sync)
	query.SetMatchLimit(gokeychain.MatchLimitOne)
	query.SetReturnData(true)

	results, err := gokeychain.QueryItem(query)
	if errors.Is(err, gokeychain.ErrorItemNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get %q: %w", ErrKeychain, account, err)
	}
	if len(results) == 0 {
		return "", false, nil
	}

	return string(results[0].Data), true, nil
}

// Set adds the item, or updates data and accessibility of an existing one
// in a single keychain call.
func (k *SystemKeychain) Set(_ context.Context, account, value string, sync bool, access models.AccessPolicy) error {
	accessible, ok := accessibility[access]
	if !ok {
		return fmt.Errorf("%w: unknown access policy %d", ErrKeychain, access)
	}

	item := k.baseItem(account, sync)
	item.SetLabel(fmt.Sprintf("%s: %s", k.service, account))
	item.SetData([]byte(value))
	item.SetAccessible(accessible)

	err := gokeychain.AddItem(item)
	if errors.Is(err, gokeychain.ErrorDuplicateItem) {
		update := gokeychain.NewItem()
		update.SetData([]byte(value))
		update.SetAccessible(accessible)
		err = gokeychain.UpdateItem(k.baseItem(account, sync), update)
	}
	if err != nil {
		return fmt.Errorf("%w: set %q: %w", ErrKeychain, account, err)
	}

	return nil
}

func (k *SystemKeychain) Delete(_ context.Context, account string, sync bool) (bool, error) {
	err := gokeychain.DeleteItem(k.baseItem(account, sync))
	if errors.Is(err, gokeychain.ErrorItemNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: delete %q: %w", ErrKeychain, account, err)
	}

	return true, nil
}

func (k *SystemKeychain) Accounts(_ context.Context, sync bool) ([]string, error) {
	query := k.baseItem("", sync)
	query.SetMatchLimit(gokeychain.MatchLimitAll)
	query.SetReturnAttributes(true)

	results, err := gokeychain.QueryItem(query)
	if errors.Is(err, gokeychain.ErrorItemNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: list: %w", ErrKeychain, err)
	}

	accounts := make([]string, 0, len(results))
	for _, r := range results {
		accounts = append(accounts, r.Account)
	}
	return accounts, nil
}
