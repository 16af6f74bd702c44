package config

import (
	"flag"
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ListenAddress is a host:port flag value.
type ListenAddress struct {
	Host string
	Port int
}

// ParseFlags parses the daemon's command-line flags from args.
//
// Flags:
//
//	-a http server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-c/-config json or yaml file path with configs
//	-b storage backend (badger, sqlite, postgres, memory, keychain)
//	-data-dir storage data directory
//	-d database DSN
//	-secret-keys-backend secret key vault backend (keyring, sealed, memory)
//	-secret-keys-dir secret key vault directory
//	-service-name OS secret store service name
//	-prefix default key prefix
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit requests per second, 0 disables
//	-rate-burst rate limiter burst
//	-gc-interval badger value log GC interval
//	-key-sweep-interval orphaned key sweep interval, 0 disables
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress ListenAddress
	var jsonConfigPath string
	var storageBackend, dataDir, databaseDSN string
	var secretKeysBackend, secretKeysDir string
	var serviceName, keyPrefix string
	var tokenSignKey, tokenIssuer string
	var requestTimeout time.Duration
	var rateLimit float64
	var rateBurst int
	var gcInterval, keySweepInterval time.Duration

	fs := flag.NewFlagSet("secure-storaged", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "HTTP listen address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "gRPC listen address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "Config file path (json or yaml)")
	fs.StringVar(&jsonConfigPath, "config", "", "Config file path (alias)")
	fs.StringVar(&storageBackend, "b", "", "Storage backend")
	fs.StringVar(&dataDir, "data-dir", "", "Storage data directory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&secretKeysBackend, "secret-keys-backend", "", "Secret key vault backend")
	fs.StringVar(&secretKeysDir, "secret-keys-dir", "", "Secret key vault directory")
	fs.StringVar(&serviceName, "service-name", "", "OS secret store service name")
	fs.StringVar(&keyPrefix, "prefix", "", "Default key prefix")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Requests per second, 0 disables")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Rate limiter burst")
	fs.DurationVar(&gcInterval, "gc-interval", 0, "Badger value log GC interval")
	fs.DurationVar(&keySweepInterval, "key-sweep-interval", 0, "Orphaned key sweep interval, 0 disables")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			ServiceName:  serviceName,
			KeyPrefix:    keyPrefix,
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Storage: Storage{
			Backend: storageBackend,
			DataDir: dataDir,
			DB: DB{
				DSN: databaseDSN,
			},
		},
		SecretKeys: SecretKeys{
			Backend: secretKeysBackend,
			Dir:     secretKeysDir,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Workers: Workers{
			GCInterval:       gcInterval,
			KeySweepInterval: keySweepInterval,
		},
		FilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" when the address was never set.
func (a *ListenAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set implements flag.Value. The host may be empty (all interfaces), an IP
// literal or a DNS name; the port must be in 1..65535.
func (a *ListenAddress) Set(s string) error {
	host, portString, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidListenAddress, s)
	}

	port, err := strconv.Atoi(portString)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q", ErrInvalidListenAddress, portString)
	}

	if host != "" && net.ParseIP(host) == nil && !isHostname(host) {
		return fmt.Errorf("%w: host %q", ErrInvalidListenAddress, host)
	}

	a.Host = host
	a.Port = port
	return nil
}

var hostnamePattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// isHostname reports whether host is a DNS name. Dotted all-numeric hosts
// are not names; they have to parse as IPs.
func isHostname(host string) bool {
	if !hostnamePattern.MatchString(host) {
		return false
	}
	return strings.Trim(host, "0123456789.") != ""
}
