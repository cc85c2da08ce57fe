package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mcoot/decklist-exporter/internal/services/exporter"
)

func newSubmitCmd() *cobra.Command {
	var form exporter.Form

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a decklist code for a trainer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := exporter.NewController(client, exporter.Config{RequirePhone: cfg.RequirePhone}, svcLog)
			if err := ctrl.SetForm(form); err != nil {
				return err
			}

			deck, err := ctrl.Submit(cmd.Context())
			if err != nil {
				return errors.New(ctrl.State().ErrorMessage)
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(deck)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.TrainerName, "name", "", "Trainer's name")
	cmd.Flags().StringVar(&form.DecklistCode, "code", "", "Decklist code (example: xjWavy-BLGRUg-alyCYf)")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "Phone number, digits only (08...)")

	return cmd
}
