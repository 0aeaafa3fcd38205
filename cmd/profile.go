package cmd

import (
	"fmt"

	"github.com/edenis00/fintrack-cli/internal/api"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and update your profile",
	}

	cmd.AddCommand(newProfileGetCmd(app), newProfileUpdateCmd(app))

	return cmd
}

func newProfileGetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.client.GetProfile(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, profile)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\nrole: %s\nbalance: %.2f\nactive: %t\n",
				profile.FullName(), profile.Email, profile.Role, profile.Balance, profile.IsActive)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newProfileUpdateCmd(app *app) *cobra.Command {
	var email string
	var firstName string
	var lastName string
	var phone string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			update := api.ProfileUpdate{}
			if cmd.Flags().Changed("email") {
				update.Email = &email
			}
			if cmd.Flags().Changed("first-name") {
				update.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				update.LastName = &lastName
			}
			if cmd.Flags().Changed("phone") {
				update.PhoneNumber = &phone
			}

			profile, err := app.client.UpdateProfile(cmd.Context(), update)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated profile for %s\n", profile.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "New email")
	cmd.Flags().StringVar(&firstName, "first-name", "", "New first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "New last name")
	cmd.Flags().StringVar(&phone, "phone", "", "New phone number")

	return cmd
}
