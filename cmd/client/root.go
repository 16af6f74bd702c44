package main

import (
	"context"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-secure-storage/internal/client"
	"github.com/MKhiriev/go-secure-storage/internal/config"
	"github.com/MKhiriev/go-secure-storage/internal/logger"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	prefix     string
	sync       bool
	transport  string
	address    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "secure-storage",
		Short:         "Store small secrets encrypted at rest",
		Version:       buildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(buildInfo())

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a JSON or YAML config file")
	flags.StringVar(&opts.prefix, "prefix", "", "key prefix (default from config)")
	flags.BoolVar(&opts.sync, "sync", false, "use the synchronizable store")
	flags.StringVar(&opts.transport, "transport", "", "local, http or grpc (default from config)")
	flags.StringVar(&opts.address, "address", "", "daemon address for the http or grpc transport")

	root.AddCommand(
		newGetCmd(opts),
		newSetCmd(opts),
		newRemoveCmd(opts),
		newKeysCmd(opts),
		newClearCmd(opts),
		newSweepCmd(opts),
		newBrowseCmd(opts),
	)

	return root
}

// loadConfig reads the client configuration and applies the flags the user
// set explicitly.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.ClientConfig, error) {
	cfg, err := config.GetClientConfig(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("prefix") {
		cfg.App.KeyPrefix = o.prefix
	}
	if flags.Changed("sync") {
		cfg.App.Synchronize = o.sync
	}
	if flags.Changed("transport") {
		cfg.Adapter.Transport = o.transport
	}
	if flags.Changed("address") {
		switch cfg.Adapter.Transport {
		case config.TransportGRPC:
			cfg.Adapter.GRPCAddress = o.address
		default:
			cfg.Adapter.HTTPAddress = o.address
		}
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// withApp opens the client app for one command run and closes it afterwards.
// The context is cancelled on SIGINT or SIGTERM.
func (o *rootOptions) withApp(cmd *cobra.Command, run func(ctx context.Context, a *client.App) error) error {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.NewClientLogger("secure-storage-cli", filepath.Dir(cfg.Storage.DataDir))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := client.NewApp(ctx, *cfg, cmd.OutOrStdout(), log)
	if err != nil {
		log.Err(err).Str("transport", cfg.Adapter.Transport).Msg("error opening storage")
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			log.Err(cerr).Msg("error closing storage")
		}
	}()

	if err = run(ctx, a); err != nil {
		log.Err(err).Str("command", cmd.Name()).Msg("command failed")
	}
	return err
}
