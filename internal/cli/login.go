package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bestxiangest/Goods-Trading-Center/internal/adminapi"
	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

func newLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as an administrator",
		Long:  "Check administrator credentials against the backend and store the login in ~/.gtc/session.json.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "密码: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			user, err := api.AdminLogin(cmd.Context(), username, password)
			if errors.Is(err, adminapi.ErrNotAdmin) {
				return errors.New("该账户不是管理员")
			}
			if err != nil {
				logger.Debug("login failed", "username", username, "error", err)
				return fmt.Errorf("登录失败: %s", model.Describe(err))
			}

			sess, path, err := saveSession(user.Username, cfg.Console.SessionTTL)
			if err != nil {
				return err
			}
			logger.Info("admin logged in", "username", sess.Username, "session", path)
			fmt.Fprintf(cmd.OutOrStdout(), "登录成功，欢迎 %s\n", sess.DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Administrator username or email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted if omitted)")
	cmd.MarkFlagRequired("username")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			existed, err := clearSession()
			if err != nil {
				return err
			}
			if !existed {
				fmt.Fprintln(cmd.OutOrStdout(), "当前未登录")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "已退出登录")
			return nil
		},
	}
}
