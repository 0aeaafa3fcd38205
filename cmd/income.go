package cmd

import (
	"fmt"
	"time"

	"github.com/edenis00/fintrack-cli/internal/api"
	"github.com/spf13/cobra"
)

const listPageSize = 100

func newIncomeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Manage income entries",
	}

	cmd.AddCommand(
		newIncomeListCmd(app),
		newIncomeGetCmd(app),
		newIncomeAddCmd(app),
		newIncomeUpdateCmd(app),
		newIncomeDeleteCmd(app),
	)

	return cmd
}

func newIncomeListCmd(app *app) *cobra.Command {
	var skip int
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List income entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			incomes, err := app.client.ListIncomes(cmd.Context(), skip, limit)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, incomes)
			}

			for _, income := range incomes {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%.2f\t%s\t%s\n",
					income.ID, income.Amount, income.Source, income.Date.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Entries to skip")
	cmd.Flags().IntVar(&limit, "limit", listPageSize, "Maximum entries to return")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newIncomeGetCmd(app *app) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show one income entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			income, err := app.client.GetIncome(cmd.Context(), id)
			if err != nil {
				return err
			}

			return writeJSON(cmd, income)
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Income ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newIncomeAddCmd(app *app) *cobra.Command {
	var amount float64
	var source string
	var date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload := api.IncomeCreate{Amount: amount, Source: source}
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
				payload.Date = &parsed
			}

			income, err := app.client.CreateIncome(cmd.Context(), payload)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded income %d: %.2f from %s\n", income.ID, income.Amount, income.Source)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount")
	cmd.Flags().StringVar(&source, "source", "", "Income source")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today server-side)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func newIncomeUpdateCmd(app *app) *cobra.Command {
	var id int64
	var amount float64
	var source string
	var date string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an income entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload := api.IncomeUpdate{}
			if cmd.Flags().Changed("amount") {
				payload.Amount = &amount
			}
			if cmd.Flags().Changed("source") {
				payload.Source = &source
			}
			if cmd.Flags().Changed("date") {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
				payload.Date = &parsed
			}

			income, err := app.client.UpdateIncome(cmd.Context(), id, payload)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated income %d\n", income.ID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Income ID")
	cmd.Flags().Float64Var(&amount, "amount", 0, "New amount")
	cmd.Flags().StringVar(&source, "source", "", "New source")
	cmd.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newIncomeDeleteCmd(app *app) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an income entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.client.DeleteIncome(cmd.Context(), id); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted income %d\n", id)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Income ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
