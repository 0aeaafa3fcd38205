package cmd

import (
	"fmt"
	"time"

	"github.com/edenis00/fintrack-cli/internal/api"
	"github.com/spf13/cobra"
)

func newSavingCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saving",
		Short: "Manage savings goals",
	}

	cmd.AddCommand(
		newSavingListCmd(app),
		newSavingGetCmd(app),
		newSavingAddCmd(app),
		newSavingUpdateCmd(app),
		newSavingDeleteCmd(app),
	)

	return cmd
}

func newSavingListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List savings goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			savings, err := app.client.ListSavings(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, savings)
			}

			for _, saving := range savings {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%.2f/%.2f\t%.0f%%\t%s\n",
					saving.ID, saving.CurrentAmount, saving.Amount, saving.Progress(), saving.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newSavingGetCmd(app *app) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show one savings goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			saving, err := app.client.GetSaving(cmd.Context(), id)
			if err != nil {
				return err
			}

			return writeJSON(cmd, saving)
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Saving ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newSavingAddCmd(app *app) *cobra.Command {
	var amount float64
	var current float64
	var targetDate string
	var months int
	var description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a savings goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := time.Parse("2006-01-02", targetDate)
			if err != nil {
				return fmt.Errorf("parse --target-date: %w", err)
			}

			saving, err := app.client.CreateSaving(cmd.Context(), api.SavingCreate{
				Amount:         amount,
				CurrentAmount:  current,
				TargetDate:     target,
				DurationMonths: months,
				Description:    description,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created savings goal %d: %.2f by %s\n",
				saving.ID, saving.Amount, saving.TargetDate.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Target amount")
	cmd.Flags().Float64Var(&current, "current", 0, "Amount saved so far")
	cmd.Flags().StringVar(&targetDate, "target-date", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&months, "months", 0, "Duration in months")
	cmd.Flags().StringVar(&description, "description", "", "Goal description")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("target-date")
	_ = cmd.MarkFlagRequired("months")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newSavingUpdateCmd(app *app) *cobra.Command {
	var id int64
	var amount float64
	var current float64
	var targetDate string
	var months int
	var description string
	var completed bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a savings goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload := api.SavingUpdate{}
			if cmd.Flags().Changed("amount") {
				payload.Amount = &amount
			}
			if cmd.Flags().Changed("current") {
				payload.CurrentAmount = &current
			}
			if cmd.Flags().Changed("target-date") {
				target, err := time.Parse("2006-01-02", targetDate)
				if err != nil {
					return fmt.Errorf("parse --target-date: %w", err)
				}
				payload.TargetDate = &target
			}
			if cmd.Flags().Changed("months") {
				payload.DurationMonths = &months
			}
			if cmd.Flags().Changed("description") {
				payload.Description = &description
			}
			if cmd.Flags().Changed("completed") {
				payload.IsCompleted = &completed
			}

			saving, err := app.client.UpdateSaving(cmd.Context(), id, payload)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated savings goal %d (%.0f%% funded)\n", saving.ID, saving.Progress())
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Saving ID")
	cmd.Flags().Float64Var(&amount, "amount", 0, "New target amount")
	cmd.Flags().Float64Var(&current, "current", 0, "New saved amount")
	cmd.Flags().StringVar(&targetDate, "target-date", "", "New target date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&months, "months", 0, "New duration in months")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().BoolVar(&completed, "completed", false, "Mark the goal completed")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newSavingDeleteCmd(app *app) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a savings goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.client.DeleteSaving(cmd.Context(), id); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted savings goal %d\n", id)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Saving ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
