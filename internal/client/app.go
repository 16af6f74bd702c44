package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-secure-storage/internal/adapter"
	"github.com/MKhiriev/go-secure-storage/internal/config"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/MKhiriev/go-secure-storage/internal/service"
	"github.com/MKhiriev/go-secure-storage/internal/tui"
	"github.com/MKhiriev/go-secure-storage/models"
)

// App runs CLI commands against one storage facade.
type App struct {
	storage *service.StorageService
	sweeper service.KeySweeper
	browser Browser
	closers []io.Closer

	out    io.Writer
	logger *logger.Logger
}

// NewApp opens the item store selected by cfg.Adapter.Transport and wraps it
// in the storage facade. Command output goes to out.
func NewApp(ctx context.Context, cfg config.ClientConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	app := &App{out: out, logger: logger}

	var items service.ItemStore

	switch cfg.Adapter.Transport {
	case config.TransportLocal:
		services, err := service.NewServices(ctx, config.StructuredConfig{
			App:        cfg.App,
			Storage:    cfg.Storage,
			SecretKeys: cfg.SecretKeys,
		}, nil, logger)
		if err != nil {
			return nil, err
		}
		items = services.ItemStore
		app.sweeper = services.KeySweeper
		app.closers = append(app.closers, services)
	case config.TransportHTTP:
		store, err := adapter.NewHTTPItemStore(cfg, logger)
		if err != nil {
			return nil, err
		}
		items = store
	case config.TransportGRPC:
		store, err := adapter.NewGRPCItemStore(cfg, logger)
		if err != nil {
			return nil, err
		}
		items = store
		app.closers = append(app.closers, store)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, cfg.Adapter.Transport)
	}

	app.storage = service.NewStorageService(items, cfg.App)
	app.browser = tui.New(app.storage, logger)

	logger.Debug().Str("transport", cfg.Adapter.Transport).Msg("client app ready")

	return app, nil
}

// newAppFrom builds an App over an existing facade.
func newAppFrom(storage *service.StorageService, sweeper service.KeySweeper, browser Browser, out io.Writer) *App {
	return &App{storage: storage, sweeper: sweeper, browser: browser, out: out, logger: logger.Nop()}
}

// Storage exposes the facade, mainly for persistent flag overrides.
func (a *App) Storage() *service.StorageService {
	return a.storage
}

// GetOptions controls how Get prints a value.
type GetOptions struct {
	// Raw prints the stored payload verbatim.
	Raw bool
	// NoDate keeps date payloads as strings.
	NoDate bool
}

// Get prints the value stored under key.
func (a *App) Get(ctx context.Context, key string, opts GetOptions) error {
	if opts.Raw {
		payload, err := a.storage.GetItem(ctx, key)
		if err != nil {
			return err
		}
		if payload == nil {
			return ErrKeyNotFound
		}
		_, err = fmt.Fprintln(a.out, *payload)
		return err
	}

	var getOpts []service.Option
	if opts.NoDate {
		getOpts = append(getOpts, service.WithoutDateConversion())
	}

	value, err := a.storage.Get(ctx, key, getOpts...)
	if err != nil {
		return err
	}
	if value == nil {
		return ErrKeyNotFound
	}

	return a.printValue(value)
}

func (a *App) printValue(value any) error {
	switch v := value.(type) {
	case string:
		_, err := fmt.Fprintln(a.out, v)
		return err
	case time.Time:
		_, err := fmt.Fprintln(a.out, v.Format(time.RFC3339Nano))
		return err
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, string(b))
		return err
	}
}

// SetOptions controls how Set stores a value.
type SetOptions struct {
	// Raw stores the value verbatim instead of as a JSON value.
	Raw bool
	// Access overrides the default access policy when set.
	Access *models.AccessPolicy
}

// Set stores value under key. Unless Raw is set a value that is valid JSON
// is stored as that JSON value and anything else as a JSON string.
func (a *App) Set(ctx context.Context, key, value string, opts SetOptions) error {
	var setOpts []service.Option
	if opts.Access != nil {
		setOpts = append(setOpts, service.WithAccess(*opts.Access))
	}

	if opts.Raw {
		return a.storage.SetItem(ctx, key, value, setOpts...)
	}

	var stored any = value
	if json.Valid([]byte(value)) {
		stored = json.RawMessage(value)
	}
	return a.storage.Set(ctx, key, stored, setOpts...)
}

// Remove deletes key and prints whether it existed.
func (a *App) Remove(ctx context.Context, key string) error {
	removed, err := a.storage.Remove(ctx, key)
	if err != nil {
		return err
	}

	if !removed {
		_, err = fmt.Fprintf(a.out, "%s: not found\n", key)
		return err
	}
	_, err = fmt.Fprintf(a.out, "%s: removed\n", key)
	return err
}

// Keys prints every key under the current prefix, one per line.
func (a *App) Keys(ctx context.Context) error {
	keys, err := a.storage.Keys(ctx)
	if err != nil {
		return err
	}

	for _, k := range keys {
		if _, err = fmt.Fprintln(a.out, k); err != nil {
			return err
		}
	}
	return nil
}

// Clear deletes every entry under the current prefix.
func (a *App) Clear(ctx context.Context) error {
	return a.storage.Clear(ctx)
}

// Sweep deletes orphaned secret keys and prints how many were removed.
func (a *App) Sweep(ctx context.Context) error {
	if a.sweeper == nil {
		return ErrSweepUnsupported
	}

	n, err := a.sweeper.Sweep(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "%d orphaned keys deleted\n", n)
	return err
}

// Browse runs the interactive key browser.
func (a *App) Browse(ctx context.Context) error {
	return a.browser.Browse(ctx)
}

// Close releases the stores or connections opened by NewApp.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
