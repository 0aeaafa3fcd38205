package cmd

import (
	"fmt"

	"github.com/edenis00/fintrack-cli/internal/api"
	"github.com/spf13/cobra"
)

func newExpenseCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Manage expenses",
	}

	cmd.AddCommand(
		newExpenseListCmd(app),
		newExpenseGetCmd(app),
		newExpenseAddCmd(app),
		newExpenseUpdateCmd(app),
		newExpenseDeleteCmd(app),
		newExpenseTotalCmd(app),
		newExpenseCategoryCmd(app),
	)

	return cmd
}

func newExpenseListCmd(app *app) *cobra.Command {
	var skip int
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			expenses, err := app.client.ListExpenses(cmd.Context(), skip, limit)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, expenses)
			}

			for _, expense := range expenses {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%.2f\t%s\t%s\n",
					expense.ID, expense.Amount, expense.Category, expense.Description)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Entries to skip")
	cmd.Flags().IntVar(&limit, "limit", listPageSize, "Maximum entries to return")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newExpenseGetCmd(app *app) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show one expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			expense, err := app.client.GetExpense(cmd.Context(), id)
			if err != nil {
				return err
			}

			return writeJSON(cmd, expense)
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Expense ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newExpenseAddCmd(app *app) *cobra.Command {
	var amount float64
	var category string
	var description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			expense, err := app.client.CreateExpense(cmd.Context(), api.ExpenseCreate{
				Amount:      amount,
				Category:    category,
				Description: description,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded expense %d: %.2f (%s)\n", expense.ID, expense.Amount, expense.Category)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newExpenseUpdateCmd(app *app) *cobra.Command {
	var id int64
	var amount float64
	var category string
	var description string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload := api.ExpenseUpdate{}
			if cmd.Flags().Changed("amount") {
				payload.Amount = &amount
			}
			if cmd.Flags().Changed("category") {
				payload.Category = &category
			}
			if cmd.Flags().Changed("description") {
				payload.Description = &description
			}

			expense, err := app.client.UpdateExpense(cmd.Context(), id, payload)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated expense %d\n", expense.ID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Expense ID")
	cmd.Flags().Float64Var(&amount, "amount", 0, "New amount")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newExpenseDeleteCmd(app *app) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.client.DeleteExpense(cmd.Context(), id); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted expense %d\n", id)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Expense ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newExpenseTotalCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Show the total spent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			total, err := app.client.TotalExpenses(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Total expenses: %.2f\n", total.TotalExpenses)
			return nil
		},
	}
}

func newExpenseCategoryCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "category <name>",
		Short: "List expenses in one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expenses, err := app.client.ExpensesByCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, expenses)
			}

			for _, expense := range expenses {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%.2f\t%s\n",
					expense.ID, expense.Amount, expense.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
