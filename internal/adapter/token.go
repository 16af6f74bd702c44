package adapter

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/config"
	"github.com/MKhiriev/go-secure-storage/internal/utils"
)

// tokenMinter mints bearer tokens on demand and reuses one until it is
// close to expiry. A minter without a sign key yields empty tokens.
type tokenMinter struct {
	signKey  string
	issuer   string
	duration time.Duration

	mu      sync.Mutex
	current string
	renewAt time.Time
}

func newTokenMinter(cfg config.App) *tokenMinter {
	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = time.Hour
	}
	return &tokenMinter{signKey: cfg.TokenSignKey, issuer: cfg.TokenIssuer, duration: duration}
}

// Token returns the current bearer token, or "" when authentication is off.
func (m *tokenMinter) Token() (string, error) {
	if m.signKey == "" {
		return "", nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if m.current != "" && now.Before(m.renewAt) {
		return m.current, nil
	}

	token, err := utils.GenerateJWTToken(m.issuer, ClientName, m.duration, m.signKey)
	if err != nil {
		return "", err
	}

	m.current = token.String()
	m.renewAt = now.Add(m.duration * 9 / 10)
	return m.current, nil
}
