package cmd

import (
	"fmt"

	"github.com/edenis00/fintrack-cli/internal/api"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.service.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", session.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newSignupCmd(app *app) *cobra.Command {
	var payload api.SignupRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.service.Signup(cmd.Context(), payload)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s. Run `fintrack login` to start a session.\n", profile.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&payload.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&payload.Password, "password", "", "Account password (minimum 8 characters)")
	cmd.Flags().StringVar(&payload.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&payload.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&payload.PhoneNumber, "phone", "", "Phone number")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")

	return cmd
}
