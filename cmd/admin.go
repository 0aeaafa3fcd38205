package cmd

import (
	"fmt"

	"github.com/edenis00/fintrack-cli/internal/api"
	"github.com/edenis00/fintrack-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAdminCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative operations",
	}

	cmd.AddCommand(
		newAdminDashboardCmd(app),
		newAdminUsersCmd(app),
		newAdminUserCmd(app),
		newAdminSummaryCmd(app),
	)

	return cmd
}

func newAdminDashboardCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show platform-wide counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := app.client.AdminDashboard(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, stats)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Users:    %d\n", stats.TotalUsers)
			_, _ = fmt.Fprintf(out, "Income:   %d\n", stats.TotalIncome)
			_, _ = fmt.Fprintf(out, "Expenses: %d\n", stats.TotalExpenses)
			_, _ = fmt.Fprintf(out, "Savings:  %d\n", stats.TotalSavings)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAdminUsersCmd(app *app) *cobra.Command {
	var skip int
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List registered accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := app.client.ListUsers(cmd.Context(), skip, limit)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, users)
			}

			for _, user := range users {
				active := "active"
				if !user.IsActive {
					active = "inactive"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\n",
					user.ID, user.Email, user.FullName(), user.Role, active)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Accounts to skip")
	cmd.Flags().IntVar(&limit, "limit", listPageSize, "Maximum accounts to return")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAdminUserCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Operate on one account",
	}

	cmd.AddCommand(
		newAdminUserGetCmd(app),
		newAdminUserUpdateCmd(app),
		newAdminUserDeleteCmd(app),
		newAdminUserActivationCmd(app, "activate", true),
		newAdminUserActivationCmd(app, "deactivate", false),
	)

	return cmd
}

func newAdminUserGetCmd(app *app) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show one account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.client.GetUser(cmd.Context(), id)
			if err != nil {
				return err
			}

			return writeJSON(cmd, user)
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "User ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newAdminUserUpdateCmd(app *app) *cobra.Command {
	var id int64
	var role string
	var active bool
	var verified bool
	var balance float64

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update one account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload := api.AdminUserUpdate{}
			if cmd.Flags().Changed("role") {
				r := domain.Role(role)
				if r != domain.RoleUser && r != domain.RoleAdmin {
					return fmt.Errorf("unknown role %q", role)
				}
				payload.Role = &r
			}
			if cmd.Flags().Changed("active") {
				payload.IsActive = &active
			}
			if cmd.Flags().Changed("verified") {
				payload.IsVerified = &verified
			}
			if cmd.Flags().Changed("balance") {
				payload.Balance = &balance
			}

			user, err := app.client.UpdateUser(cmd.Context(), id, payload)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated user %d (%s)\n", user.ID, user.Email)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "User ID")
	cmd.Flags().StringVar(&role, "role", "", "New role (user or admin)")
	cmd.Flags().BoolVar(&active, "active", false, "Account active state")
	cmd.Flags().BoolVar(&verified, "verified", false, "Account verified state")
	cmd.Flags().Float64Var(&balance, "balance", 0, "New balance")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newAdminUserDeleteCmd(app *app) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete one account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.client.DeleteUser(cmd.Context(), id); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %d\n", id)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "User ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newAdminUserActivationCmd(app *app, verb string, activate bool) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   verb,
		Short: fmt.Sprintf("%s one account", verb),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.client.SetUserActivation(cmd.Context(), id, activate); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "User %d %sd\n", id, verb)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "User ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newAdminSummaryCmd(app *app) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:       "summary <savings|income|expenses>",
		Short:     "Aggregated totals, optionally scoped to one user",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"savings", "income", "expenses"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *int64
			if cmd.Flags().Changed("user") {
				filter = &userID
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			switch args[0] {
			case "savings":
				summary, err := app.client.SavingsSummary(ctx, filter)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "Savings goals: %d, total %.2f\n", summary.TotalSavings, summary.TotalAmount)
			case "income":
				summary, err := app.client.IncomeSummary(ctx, filter)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "Income entries: %d, total %.2f\n", summary.TotalIncome, summary.TotalAmount)
			case "expenses":
				summary, err := app.client.ExpensesSummary(ctx, filter)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "Expenses: %d, total %.2f\n", summary.TotalExpenses, summary.TotalAmount)
			default:
				return fmt.Errorf("unknown summary %q", args[0])
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "Scope to one user ID")

	return cmd
}
