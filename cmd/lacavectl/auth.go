package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "登入並儲存 session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.api.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := a.sessions.Save(sess); err != nil {
				return err
			}
			name := email
			if sess.User != nil {
				name = sess.User.Name + " (" + string(sess.User.Role) + ")"
			}
			a.printf("%s\n", successStyle.Render("已登入: "+name))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&password, "password", "", "密碼")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "清除本機 session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sessions.Clear(); err != nil {
				return err
			}
			a.printf("%s\n", successStyle.Render("已登出"))
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "顯示目前登入的帳號",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			acc, err := a.api.Auth.Me(a.ctx(cmd))
			if err != nil {
				return err
			}
			a.printf("%s\n", renderTable("目前帳號",
				[]string{"ID", "NAME", "EMAIL", "ROLE"},
				[][]string{{acc.ID, acc.Name, acc.Email, string(acc.Role)}}))
			return nil
		},
	}
}

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "檢查後端是否可連線",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.api.Health(cmd.Context()) {
				a.printf("%s %s\n", errorStyle.Render("無法連線"), mutedStyle.Render(a.api.BaseURL()))
				return fmt.Errorf("後端 %s 無回應", a.api.BaseURL())
			}
			a.printf("%s %s\n", successStyle.Render("OK"), mutedStyle.Render(a.api.BaseURL()))
			return nil
		},
	}
}
