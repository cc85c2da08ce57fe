package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/decklist-exporter/internal/services/pin"
	"github.com/mcoot/decklist-exporter/internal/storage/file"
)

func newPinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Event PIN commands",
	}

	cmd.AddCommand(newPinSetCmd())
	cmd.AddCommand(newPinShowCmd())

	return cmd
}

func newPinSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <digits>",
		Short: "Encode and store an 8-digit PIN",
		Long:  "Non-digits are ignored and input beyond 8 digits is dropped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := pin.New(file.NewPinStore(cfg.PinFile), svcLog)

			entry, err := svc.Enter(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !entry.Saved {
				suffix := "s"
				if entry.Remaining == 1 {
					suffix = ""
				}
				return fmt.Errorf("enter %d more digit%s", entry.Remaining, suffix)
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(PinResult{Token: entry.Token, Saved: true, File: cfg.PinFile})
			return nil
		},
	}
}

func newPinShowCmd() *cobra.Command {
	var decode bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored PIN token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := pin.New(file.NewPinStore(cfg.PinFile), svcLog)

			token, err := svc.Stored(cmd.Context())
			if err != nil {
				return err
			}

			result := PinResult{Token: token, File: cfg.PinFile}
			if decode && token != "" {
				digits, err := pin.Decode(token)
				if err != nil {
					if errors.Is(err, pin.ErrInvalidToken) {
						return fmt.Errorf("stored token in %s is not a valid PIN", cfg.PinFile)
					}
					return err
				}
				result.PIN = digits
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&decode, "decode", false, "Print the decoded digits instead of the token")

	return cmd
}
