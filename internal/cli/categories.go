package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

func newCategoriesCmd() *cobra.Command {
	cmd := requireSession(&cobra.Command{
		Use:   "categories",
		Short: "Manage the category tree",
	})
	cmd.AddCommand(
		&cobra.Command{
			Use:   "tree",
			Short: "Show the category tree with item counts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runSection(cmd, model.SectionCategories, 1, nil)
			},
		},
		newCategoryAddCmd(),
		newCategoryRenameCmd(),
		newDeleteCmd(model.SectionCategories, "Delete an empty category"),
	)
	return cmd
}

func newCategoryAddCmd() *cobra.Command {
	var parent int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := model.CategoryInput{Name: args[0]}
			if cmd.Flags().Changed("parent") {
				in.ParentID = &parent
			}
			c, err := api.CreateCategory(cmd.Context(), in)
			if err != nil {
				return err
			}
			return done(cmd, c, fmt.Sprintf("分类添加成功 (ID %d)", c.CategoryID))
		},
	}
	cmd.Flags().IntVar(&parent, "parent", 0, "Parent category ID")
	return cmd
}

func newCategoryRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := api.UpdateCategory(cmd.Context(), id, model.CategoryInput{Name: args[1]})
			if err != nil {
				return err
			}
			return done(cmd, c, "分类更新成功")
		},
	}
}
