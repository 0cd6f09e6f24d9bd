package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"la-cave/internal/model"
)

func newReviewsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "評論管理",
	}
	cmd.AddCommand(
		newReviewsListCmd(a),
		newReviewApprovalCmd(a, "approve", true),
		newReviewApprovalCmd(a, "reject", false),
		newReviewDeleteCmd(a),
	)
	return cmd
}

func newReviewsListCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "列出評論",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var list []model.Review
			if all {
				if err := a.requireSession(); err != nil {
					return err
				}
				var err error
				if list, err = a.api.Reviews.ListAll(a.ctx(cmd)); err != nil {
					return err
				}
			} else {
				list = a.api.Reviews.ListPublic(a.ctx(cmd))
			}

			rows := make([][]string, 0, len(list))
			for _, r := range list {
				status := "待審核"
				if r.IsApproved {
					status = "已核准"
				}
				rows = append(rows, []string{r.ID, r.Name, strings.Repeat("★", r.Rating), status, truncate(r.Comment, 40)})
			}
			a.printf("%s", renderTable("評論（"+strconv.Itoa(len(list))+"）",
				[]string{"ID", "NAME", "RATING", "STATUS", "COMMENT"}, rows))
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "包含尚未核准的評論（需管理員）")
	return cmd
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func newReviewApprovalCmd(a *app, use string, approved bool) *cobra.Command {
	short := "核准評論"
	if !approved {
		short = "撤回評論核准"
	}
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			r, err := a.api.Reviews.SetApproval(a.ctx(cmd), args[0], approved)
			if err != nil {
				return err
			}
			a.printf("%s\n", successStyle.Render("評論 "+r.ID+" isApproved="+strconv.FormatBool(r.IsApproved)))
			return nil
		},
	}
}

func newReviewDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "刪除評論",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			if err := a.api.Reviews.Delete(a.ctx(cmd), args[0]); err != nil {
				return err
			}
			a.printf("%s\n", successStyle.Render("已刪除 "+args[0]))
			return nil
		},
	}
}
