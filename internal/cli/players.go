package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/decklist-exporter/internal/model"
	"github.com/mcoot/decklist-exporter/internal/services/admin"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayersListCmd())
	cmd.AddCommand(newPlayersEditCmd())
	cmd.AddCommand(newPlayersRegisterCmd())
	cmd.AddCommand(newPlayersDeleteCmd())

	return cmd
}

// loadTable fetches the player list, reducing failures to the table's message
func loadTable(cmd *cobra.Command) (*admin.Controller, error) {
	ctrl := admin.NewController(client, svcLog)
	if err := ctrl.Load(cmd.Context()); err != nil {
		return nil, errors.New(ctrl.State().Error)
	}
	return ctrl, nil
}

func newPlayersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := loadTable(cmd)
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(ctrl.State().Players)
			return nil
		},
	}
}

func newPlayersEditCmd() *cobra.Command {
	var name, deckCode string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a player's name and deck code",
		Long: `Edit a player. Unset flags keep the current values. An empty deck code is
not sent, so it leaves the stored code unchanged; use "players register" to
clear it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := loadTable(cmd)
			if err != nil {
				return err
			}

			form, err := ctrl.BeginEdit(model.PlayerID(args[0]))
			if err != nil {
				return fmt.Errorf("player %s: %w", args[0], err)
			}
			if cmd.Flags().Changed("name") {
				form.Name = name
			}
			if cmd.Flags().Changed("deck-code") {
				form.DeckCode = deckCode
			}

			if err := ctrl.SaveEdit(cmd.Context(), form); err != nil {
				return errors.New(ctrl.State().Error)
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.PrintMessage("Player updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&deckCode, "deck-code", "", "New deck code")

	return cmd
}

func newPlayersRegisterCmd() *cobra.Command {
	var deckCode string

	cmd := &cobra.Command{
		Use:   "register <id>",
		Short: "Register a deck code for a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := loadTable(cmd)
			if err != nil {
				return err
			}

			form, err := ctrl.BeginRegister(model.PlayerID(args[0]))
			if err != nil {
				return fmt.Errorf("player %s: %w", args[0], err)
			}
			form.DeckCode = deckCode

			if err := ctrl.SaveRegister(cmd.Context(), form); err != nil {
				return errors.New(ctrl.State().Error)
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.PrintMessage("Deck registered")
			return nil
		},
	}

	cmd.Flags().StringVar(&deckCode, "deck-code", "", "Deck code; empty clears it")
	_ = cmd.MarkFlagRequired("deck-code")

	return cmd
}

func newPlayersDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := admin.NewController(client, svcLog)

			confirmer := admin.Confirmer(admin.ConfirmFunc(func(string) bool { return true }))
			if !yes {
				confirmer = promptConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
			}

			attempted, err := ctrl.Delete(cmd.Context(), model.PlayerID(args[0]), confirmer)
			if err != nil {
				return errors.New(ctrl.State().Error)
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			if !attempted {
				out.PrintMessage("Cancelled")
				return nil
			}
			out.PrintMessage("Player deleted")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// promptConfirmer asks on w and accepts "y" or "yes" from r
func promptConfirmer(r io.Reader, w io.Writer) admin.Confirmer {
	return admin.ConfirmFunc(func(prompt string) bool {
		fmt.Fprintf(w, "%s [y/N]: ", prompt)
		line, err := bufio.NewReader(r).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	})
}
