package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"la-cave/internal/client"
)

var (
	sessionPath = client.DefaultSessionPath
	getenv      = os.Getenv
)

var errNotLoggedIn = errors.New("尚未登入，請先執行 lacavectl login")

// app 每次執行只載入一次 session，再透過 context 交給 client
type app struct {
	api      *client.Client
	sessions client.SessionStore
	session  *client.Session
	out      io.Writer
}

func (a *app) ctx(cmd *cobra.Command) context.Context {
	return client.WithSession(cmd.Context(), a.session)
}

func (a *app) requireSession() error {
	if a.session == nil || a.session.Token == "" {
		return errNotLoggedIn
	}
	return nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var apiURL string

	root := &cobra.Command{
		Use:           "lacavectl",
		Short:         "La Cave 餐廳後台管理工具",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if apiURL == "" {
				apiURL = getenv("LACAVE_API_URL")
			}
			a.out = cmd.OutOrStdout()
			a.api = client.New(apiURL, client.WithLogf(func(format string, args ...any) {
				fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render(fmt.Sprintf(format, args...)))
			}))

			path, err := sessionPath()
			if err != nil {
				return err
			}
			a.sessions = client.SessionStore{Path: path}
			sess, err := a.sessions.Load()
			if err != nil {
				return err
			}
			a.session = sess
			return nil
		},
	}
	root.PersistentFlags().StringVar(&apiURL, "api", "", "API 位址（預設讀取 LACAVE_API_URL）")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newHealthCmd(a),
		newMenuCmd(a),
		newReservationsCmd(a),
		newReviewsCmd(a),
	)
	return root
}
