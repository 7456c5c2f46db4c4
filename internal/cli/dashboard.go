package cli

import (
	"github.com/spf13/cobra"

	"github.com/bestxiangest/Goods-Trading-Center/internal/console"
	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

func newDashboardCmd() *cobra.Command {
	return requireSession(&cobra.Command{
		Use:   "dashboard",
		Short: "Show platform totals and charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := newTermView(cmd, nil)
			ctrl := v.controller()
			defer ctrl.Charts().Release()

			// Counts degrade to zero on their own; only chart data fails the load.
			if err := ctrl.SwitchTo(cmd.Context(), model.SectionDashboard); err != nil {
				logger.Debug("dashboard charts incomplete", "error", err)
				v.Alert(console.AlertWarning, "部分图表数据加载失败")
			}
			return v.Err()
		},
	})
}
