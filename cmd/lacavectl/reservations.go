package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"la-cave/internal/model"
)

func newReservationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reservations",
		Aliases: []string{"resv"},
		Short:   "訂位管理（需管理員）",
	}
	cmd.AddCommand(newReservationsListCmd(a), newReservationStatusCmd(a))
	return cmd
}

func newReservationsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "列出所有訂位",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			list, err := a.api.Reservations.List(a.ctx(cmd))
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(list))
			for _, r := range list {
				rows = append(rows, []string{r.ID, r.Date, r.Time, r.Name, strconv.Itoa(int(r.Guests)), string(r.Status)})
			}
			a.printf("%s", renderTable("訂位（"+strconv.Itoa(len(list))+"）",
				[]string{"ID", "DATE", "TIME", "NAME", "GUESTS", "STATUS"}, rows))
			return nil
		},
	}
}

func newReservationStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "status <id> <pending|confirmed|cancelled|completed>",
		Short:     "更新訂位狀態",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(model.StatusPending), string(model.StatusConfirmed), string(model.StatusCancelled), string(model.StatusCompleted)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			r, err := a.api.Reservations.UpdateStatus(a.ctx(cmd), args[0], model.ReservationStatus(args[1]))
			if err != nil {
				return err
			}
			a.printf("%s\n", successStyle.Render("訂位 "+r.ID+" 狀態已更新為 "+string(r.Status)))
			return nil
		},
	}
}
