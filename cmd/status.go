package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	sessionrender "github.com/edenis00/fintrack-cli/internal/adapters/render/session"
	"github.com/edenis00/fintrack-cli/internal/application"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool
	var cached bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current session and account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cached {
				return runCachedStatus(cmd, app, asJSON)
			}
			return runStatus(cmd, app, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&cached, "cached", false, "Show the last verified snapshot without contacting the server")

	return cmd
}

func runStatus(cmd *cobra.Command, app *app, asJSON bool) error {
	var status application.Status

	verify := func(ctx context.Context) error {
		var err error
		status, err = app.service.Status(ctx)
		return err
	}

	if asJSON {
		if err := verify(cmd.Context()); err != nil {
			return err
		}
		return writeJSON(cmd, status)
	}

	if err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Verifying session...", verify); err != nil {
		return err
	}

	rendered, err := app.statusRenderer(status, sessionrender.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func runCachedStatus(cmd *cobra.Command, app *app, asJSON bool) error {
	cachedStatus, err := app.service.CachedStatus(cmd.Context())
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd, cachedStatus)
	}

	profile := cachedStatus.Cached.Profile
	rendered, err := app.statusRenderer(
		application.Status{Session: application.Session{Authenticated: true, User: &profile}},
		sessionrender.RenderOptions{Now: app.now(), Cached: true, FetchedAt: cachedStatus.Cached.FetchedAt},
	)
	if err != nil {
		return fmt.Errorf("render cached status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
