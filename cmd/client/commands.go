package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-secure-storage/internal/client"
	"github.com/MKhiriev/go-secure-storage/models"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGetCmd(root *rootOptions) *cobra.Command {
	var opts client.GetOptions

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value stored under key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.withApp(cmd, func(ctx context.Context, a *client.App) error {
				return a.Get(ctx, args[0], opts)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "print the stored payload verbatim")
	cmd.Flags().BoolVar(&opts.NoDate, "no-date", false, "do not convert stored dates")
	return cmd
}

func newSetCmd(root *rootOptions) *cobra.Command {
	var (
		raw    bool
		access int
	)

	cmd := &cobra.Command{
		Use:   "set <key> [value]",
		Short: "Store a value under key",
		Long:  "Store a value. If value is omitted it is read from the terminal without echo, or from stdin when piped.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value string
			if len(args) == 2 {
				value = args[1]
			} else {
				v, err := readValue(cmd)
				if err != nil {
					return err
				}
				value = v
			}

			opts := client.SetOptions{Raw: raw}
			if cmd.Flags().Changed("access") {
				policy := models.AccessPolicy(access)
				if !policy.Valid() {
					return fmt.Errorf("invalid access policy %d", access)
				}
				opts.Access = &policy
			}

			return root.withApp(cmd, func(ctx context.Context, a *client.App) error {
				return a.Set(ctx, args[0], value, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "store the value verbatim instead of as JSON")
	cmd.Flags().IntVar(&access, "access", 0, "access policy index 0..4")
	return cmd
}

// readValue prompts for a hidden value on a terminal and reads all of stdin
// otherwise.
func readValue(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(cmd.ErrOrStderr(), "Enter value: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("reading value: %w", err)
		}
		return string(b), nil
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func newRemoveCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <key>",
		Short:   "Remove the value stored under key",
		Aliases: []string{"remove"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.withApp(cmd, func(ctx context.Context, a *client.App) error {
				return a.Remove(ctx, args[0])
			})
		},
	}
}

func newKeysCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "keys",
		Short:   "List keys under the prefix",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return root.withApp(cmd, func(ctx context.Context, a *client.App) error {
				return a.Keys(ctx)
			})
		},
	}
}

func newClearCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every value under the prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return root.withApp(cmd, func(ctx context.Context, a *client.App) error {
				return a.Clear(ctx)
			})
		},
	}
}

func newSweepCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Delete secret keys no stored value uses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return root.withApp(cmd, func(ctx context.Context, a *client.App) error {
				return a.Sweep(ctx)
			})
		},
	}
}

func newBrowseCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse keys interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return root.withApp(cmd, func(ctx context.Context, a *client.App) error {
				return a.Browse(ctx)
			})
		},
	}
}
