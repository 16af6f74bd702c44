// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AccessPolicy is the availability tier attached to an entry at write time.
// It governs when the OS lets the entry be read relative to device lock and
// boot state. Backends without that granularity accept and ignore it.
//
// The numeric values are part of the wire format and must not be reordered.
type AccessPolicy int

const (
	// AccessibleWhenUnlocked: readable while the device is unlocked. Default.
	AccessibleWhenUnlocked AccessPolicy = iota
	// AccessibleWhenUnlockedThisDeviceOnly: as above, never migrated to another device.
	AccessibleWhenUnlockedThisDeviceOnly
	// AccessibleAfterFirstUnlock: readable after the first unlock following boot.
	AccessibleAfterFirstUnlock
	// AccessibleAfterFirstUnlockThisDeviceOnly: as above, never migrated.
	AccessibleAfterFirstUnlockThisDeviceOnly
	// AccessibleWhenPasscodeSetThisDeviceOnly: readable only while a device
	// passcode is set; removed when the passcode is removed.
	AccessibleWhenPasscodeSetThisDeviceOnly
)

var accessPolicyNames = [...]string{
	"whenUnlocked",
	"whenUnlockedThisDeviceOnly",
	"afterFirstUnlock",
	"afterFirstUnlockThisDeviceOnly",
	"whenPasscodeSetThisDeviceOnly",
}

// Valid reports whether a is one of the defined tiers.
func (a AccessPolicy) Valid() bool {
	return a >= AccessibleWhenUnlocked && a <= AccessibleWhenPasscodeSetThisDeviceOnly
}

// String returns the camelCase name of the tier.
func (a AccessPolicy) String() string {
	if !a.Valid() {
		return "AccessPolicy(" + strconv.Itoa(int(a)) + ")"
	}
	return accessPolicyNames[a]
}

// ParseAccessPolicy accepts either the numeric index ("0".."4") or the
// camelCase name ("afterFirstUnlock"), case-insensitively.
func ParseAccessPolicy(s string) (AccessPolicy, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		a := AccessPolicy(n)
		if !a.Valid() {
			return 0, fmt.Errorf("unknown access policy %d", n)
		}
		return a, nil
	}

	for i, name := range accessPolicyNames {
		if strings.EqualFold(name, s) {
			return AccessPolicy(i), nil
		}
	}

	return 0, fmt.Errorf("unknown access policy %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler so the policy can be
// configured from environment variables and YAML by name or index.
func (a *AccessPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseAccessPolicy(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON writes the numeric index, the form used on the RPC wire.
// Out-of-range values are written as well and rejected by the receiver.
func (a AccessPolicy) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(a), 10), nil
}

// UnmarshalJSON accepts the numeric index or the camelCase name as a string.
func (a *AccessPolicy) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		return a.UnmarshalText([]byte(name))
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("access policy: %w", err)
	}
	if !AccessPolicy(n).Valid() {
		return fmt.Errorf("unknown access policy %d", n)
	}
	*a = AccessPolicy(n)
	return nil
}
