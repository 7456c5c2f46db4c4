package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

func newUsersCmd() *cobra.Command {
	cmd := requireSession(&cobra.Command{
		Use:   "users",
		Short: "Manage platform users",
	})
	cmd.AddCommand(
		newListCmd(model.SectionUsers,
			filterFlag{flag: "search", param: "search", usage: "Match username or email"},
			filterFlag{flag: "role", param: "role", usage: "Role (user, admin, all)"},
		),
		newUserShowCmd(),
		newUserAddCmd(),
		newDeleteCmd(model.SectionUsers, "Delete a user"),
		newUserToggleCmd(),
	)
	return cmd
}

func newUserShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			u, err := api.GetUser(cmd.Context(), id)
			if err != nil {
				return err
			}
			return newPrinter(cmd).record(u, [][2]string{
				{"ID", strconv.Itoa(u.UserID)},
				{"用户名", u.Username},
				{"邮箱", orDash(u.Email)},
				{"电话", orDash(u.Phone)},
				{"地址", orDash(u.Address)},
				{"角色", u.RoleLabel()},
				{"状态", activeLabel(u)},
				{"信誉", fmt.Sprintf("%s %.1f", model.Stars(u.ReputationScore), u.ReputationScore)},
				{"发布物品", strconv.Itoa(u.ItemsCount)},
				{"完成交易", strconv.Itoa(u.TransactionsCount)},
				{"注册时间", timeAgo(u.CreatedAt)},
				{"最近登录", timeAgo(u.LastLogin)},
			})
		},
	}
}

func newUserAddCmd() *cobra.Command {
	var in model.NewUser

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := api.RegisterUser(cmd.Context(), in)
			if err != nil {
				return err
			}
			return done(cmd, u, fmt.Sprintf("用户添加成功 (ID %d)", u.UserID))
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Username, "username", "", "Username")
	f.StringVar(&in.Email, "email", "", "Email address")
	f.StringVar(&in.Password, "password", "", "Password, at least 6 characters")
	f.StringVar(&in.Address, "address", "", "Address")
	f.StringVar(&in.Phone, "phone", "", "Phone number")
	f.BoolVar(&in.IsAdmin, "admin", false, "Grant administrator rights")
	return cmd
}

func newUserToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Enable or disable a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return reported(quietView(cmd).controller().ToggleUser(cmd.Context(), id))
		},
	}
}
