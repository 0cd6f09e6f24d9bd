package main

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"la-cave/internal/model"
)

func newMenuCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "菜單管理",
	}
	cmd.AddCommand(newMenuListCmd(a), newMenuShowCmd(a), newMenuDeleteCmd(a))
	return cmd
}

func newMenuListCmd(a *app) *cobra.Command {
	var (
		category string
		dietary  []string
		popular  bool
		sort     string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "列出菜單項目",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if category != "" && !slices.Contains(model.MenuCategories, category) {
				return fmt.Errorf("無效的分類 %q，可用: %s", category, strings.Join(model.MenuCategories, ", "))
			}
			for _, d := range dietary {
				if !slices.Contains(model.DietaryTags, d) {
					return fmt.Errorf("無效的飲食標籤 %q，可用: %s", d, strings.Join(model.DietaryTags, ", "))
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.ctx(cmd)
			var items []model.MenuItem
			switch {
			case popular:
				items = a.api.Menu.Popular(ctx)
			case category != "":
				items = a.api.Menu.ByCategory(ctx, category)
			default:
				q := url.Values{}
				if sort != "" {
					q.Set("sort", sort)
				}
				if len(dietary) > 0 {
					q.Set("dietary[in]", strings.Join(dietary, ","))
				}
				items = a.api.Menu.List(ctx, q)
			}
			a.printf("%s", renderMenu(items))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "只列出指定分類（"+strings.Join(model.MenuCategories, "|")+"）")
	cmd.Flags().StringSliceVar(&dietary, "dietary", nil, "符合任一飲食標籤（"+strings.Join(model.DietaryTags, "|")+"）")
	cmd.Flags().BoolVar(&popular, "popular", false, "只列出熱門項目")
	cmd.Flags().StringVar(&sort, "sort", "", "排序欄位，例如 -price")
	return cmd
}

func renderMenu(items []model.MenuItem) string {
	rows := make([][]string, 0, len(items))
	for _, m := range items {
		flags := ""
		if m.IsPopular {
			flags += "★"
		}
		if !m.IsAvailable {
			flags += "停售"
		}
		rows = append(rows, []string{m.ID, m.Name, m.Category, fmt.Sprintf("%.2f", m.Price), flags})
	}
	return renderTable("菜單（"+strconv.Itoa(len(items))+"）", []string{"ID", "NAME", "CATEGORY", "PRICE", ""}, rows)
}

func newMenuShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "顯示單一菜單項目",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := a.api.Menu.Get(a.ctx(cmd), args[0])
			if item == nil {
				return fmt.Errorf("找不到菜單項目 %s", args[0])
			}
			a.printf("%s", renderMenu([]model.MenuItem{*item}))
			if item.Description != "" {
				a.printf("%s\n", mutedStyle.Render(item.Description))
			}
			return nil
		},
	}
}

func newMenuDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "刪除菜單項目",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			if err := a.api.Menu.Delete(a.ctx(cmd), args[0]); err != nil {
				return err
			}
			a.printf("%s\n", successStyle.Render("已刪除 "+args[0]))
			return nil
		},
	}
}
