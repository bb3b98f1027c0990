package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradelog/analytics"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Set and track monthly goals",
	Long: `Manage the four independent goals and check progress for the current
calendar month.

Subcommands:
  set     - configure goal values (0 clears a goal)
  status  - evaluate each configured goal against this month's trades

Examples:
  tradelog goals set --monthly-target 1000 --max-daily-loss 200
  tradelog goals status`,
}

var goalsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Configure goal values",
	Args:  cobra.NoArgs,
	RunE:  runGoalsSet,
}

var goalsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show goal progress for the current month",
	Args:  cobra.NoArgs,
	RunE:  runGoalsStatus,
}

var (
	goalMonthlyTarget float64
	goalMaxDailyLoss  float64
	goalMaxTradesDay  int
	goalMinWinRate    float64
)

func init() {
	rootCmd.AddCommand(goalsCmd)
	goalsCmd.AddCommand(goalsSetCmd)
	goalsCmd.AddCommand(goalsStatusCmd)

	goalsSetCmd.Flags().Float64Var(&goalMonthlyTarget, "monthly-target", 0, "monthly net P&L target")
	goalsSetCmd.Flags().Float64Var(&goalMaxDailyLoss, "max-daily-loss", 0, "max acceptable single-day loss")
	goalsSetCmd.Flags().IntVar(&goalMaxTradesDay, "max-trades-day", 0, "max trades per day")
	goalsSetCmd.Flags().Float64Var(&goalMinWinRate, "min-win-rate", 0, "minimum win rate percent")
}

func runGoalsSet(cmd *cobra.Command, args []string) error {
	j, goals, st, err := loadSession()
	if err != nil {
		return err
	}
	defer st.Close()

	if cmd.Flags().Changed("monthly-target") {
		goals.MonthlyPnLTarget = goalMonthlyTarget
	}
	if cmd.Flags().Changed("max-daily-loss") {
		goals.MaxDailyLossLimit = goalMaxDailyLoss
	}
	if cmd.Flags().Changed("max-trades-day") {
		goals.MaxTradesPerDayLimit = goalMaxTradesDay
	}
	if cmd.Flags().Changed("min-win-rate") {
		goals.MinWinRatePct = goalMinWinRate
	}

	if err := saveSession(st, j, goals); err != nil {
		return err
	}
	fmt.Println("goals updated")
	return nil
}

func runGoalsStatus(cmd *cobra.Command, args []string) error {
	j, goals, st, err := loadSession()
	if err != nil {
		return err
	}
	defer st.Close()

	rep := analytics.EvaluateGoals(j.Trades(), goals, time.Now())

	fmt.Println("Goal status, current month")
	fmt.Println("--------------------------------------------------")
	printGoal("Monthly P&L", rep.MonthlyPnL,
		func(g analytics.GoalStatus) string {
			return fmt.Sprintf("%.2f of %.2f (%.0f%%)", g.Value, g.Target, g.RawPct)
		})
	printGoal("Max daily loss", rep.DailyLoss,
		func(g analytics.GoalStatus) string {
			return fmt.Sprintf("worst day %.2f, limit %.2f", g.Value, g.Target)
		})
	printGoal("Max trades/day", rep.TradesPerDay,
		func(g analytics.GoalStatus) string {
			return fmt.Sprintf("busiest day %.0f, limit %.0f", g.Value, g.Target)
		})
	printGoal("Min win rate", rep.WinRate,
		func(g analytics.GoalStatus) string {
			return fmt.Sprintf("%.1f%% of %.1f%%", g.Value, g.Target)
		})
	return nil
}

func printGoal(name string, g analytics.GoalStatus, detail func(analytics.GoalStatus) string) {
	if !g.Configured {
		fmt.Printf("%-15s not set\n", name)
		return
	}
	fmt.Printf("%-15s %-10s %s\n", name, g.Status, detail(g))
}
