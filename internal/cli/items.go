package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

func newItemsCmd() *cobra.Command {
	cmd := requireSession(&cobra.Command{
		Use:   "items",
		Short: "Manage listed items",
	})
	cmd.AddCommand(
		newListCmd(model.SectionItems,
			filterFlag{flag: "search", param: "search", usage: "Match title or description"},
			filterFlag{flag: "status", param: "status", usage: "Item status (available, pending, reserved, completed, removed, cancelled)"},
			filterFlag{flag: "category", param: "category_id", usage: "Category ID"},
		),
		newItemShowCmd(),
		newItemAddCmd(),
		newItemUpdateCmd(),
		newDeleteCmd(model.SectionItems, "Delete an item"),
	)
	return cmd
}

func newItemShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			it, err := api.GetItem(cmd.Context(), id)
			if err != nil {
				return err
			}
			return newPrinter(cmd).record(it, [][2]string{
				{"ID", strconv.Itoa(it.ItemID)},
				{"标题", it.Title},
				{"描述", it.Description},
				{"分类", fmt.Sprintf("%s (#%d)", orDash(it.CategoryName), it.CategoryID)},
				{"价格", price(it.Price)},
				{"状态", it.Status.Label()},
				{"成色", it.Condition.Label()},
				{"发布者", orDash(it.OwnerUsername)},
				{"图片", orDash(strings.Join(imageURLs(it), ", "))},
				{"发布时间", timeAgo(it.CreatedAt)},
				{"更新时间", timeAgo(it.UpdatedAt)},
			})
		},
	}
}

// itemFlags are the editable fields of an item.
type itemFlags struct {
	title       string
	description string
	category    int
	condition   string
	status      string
	price       float64
	owner       int
	images      []string
	imageFiles  []string
}

func (f *itemFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.title, "title", "", "Title")
	fs.StringVar(&f.description, "description", "", "Description")
	fs.IntVar(&f.category, "category", 0, "Category ID")
	fs.StringVar(&f.condition, "condition", "", "Condition (new, like_new, good, fair, poor)")
	fs.StringVar(&f.status, "status", "", "Status (available, pending, reserved, completed, removed, cancelled)")
	fs.Float64Var(&f.price, "price", 0, "Price")
	fs.IntVar(&f.owner, "owner", 0, "Owner user ID")
	fs.StringSliceVar(&f.images, "image", nil, "Image URL (repeatable)")
	fs.StringSliceVar(&f.imageFiles, "image-file", nil, "Local image to upload and attach (repeatable)")
}

// apply copies every flag the user set onto in.
func (f *itemFlags) apply(cmd *cobra.Command, in *model.ItemInput) error {
	fs := cmd.Flags()
	if fs.Changed("title") {
		in.Title = f.title
	}
	if fs.Changed("description") {
		in.Description = f.description
	}
	if fs.Changed("category") {
		in.CategoryID = f.category
	}
	if fs.Changed("condition") {
		in.Condition = model.ItemCondition(f.condition)
	}
	if fs.Changed("status") {
		in.Status = model.ItemStatus(f.status)
	}
	if fs.Changed("price") {
		p := f.price
		in.Price = &p
	}
	if fs.Changed("owner") {
		in.OwnerID = f.owner
	}
	if fs.Changed("image") || fs.Changed("image-file") {
		in.ImageURLs = append([]string(nil), f.images...)
	}
	for _, path := range f.imageFiles {
		url, err := uploadFile(cmd, path)
		if err != nil {
			return err
		}
		in.ImageURLs = append(in.ImageURLs, url)
	}
	return nil
}

func newItemAddCmd() *cobra.Command {
	var f itemFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := model.ItemInput{Condition: model.ConditionGood}
			if err := f.apply(cmd, &in); err != nil {
				return err
			}
			it, err := api.CreateItem(cmd.Context(), in)
			if err != nil {
				return err
			}
			return done(cmd, it, fmt.Sprintf("物品添加成功 (ID %d)", it.ItemID))
		},
	}
	f.register(cmd)
	return cmd
}

func newItemUpdateCmd() *cobra.Command {
	var f itemFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change an item's fields",
		Long:  "Change an item's fields. Fields without a flag keep their current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cur, err := api.GetItem(cmd.Context(), id)
			if err != nil {
				return err
			}

			in := model.ItemInput{
				Title:       cur.Title,
				Description: cur.Description,
				CategoryID:  cur.CategoryID,
				Condition:   cur.Condition,
				Status:      cur.Status,
				ImageURLs:   imageURLs(cur),
			}
			if cur.Price > 0 {
				p := cur.Price
				in.Price = &p
			}
			if err := f.apply(cmd, &in); err != nil {
				return err
			}

			it, err := api.UpdateItem(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			return done(cmd, it, "物品更新成功")
		},
	}
	f.register(cmd)
	return cmd
}

func imageURLs(it *model.Item) []string {
	urls := make([]string, 0, len(it.Images))
	for _, img := range it.Images {
		urls = append(urls, img.ImageURL)
	}
	return urls
}

func newUploadCmd() *cobra.Command {
	return requireSession(&cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an image and print its URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := uploadFile(cmd, args[0])
			if err != nil {
				return err
			}
			return done(cmd, map[string]string{"image_url": url}, url)
		},
	})
}

func uploadFile(cmd *cobra.Command, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	url, err := api.UploadImage(cmd.Context(), path, f)
	if err != nil {
		return "", err
	}
	logger.Debug("image uploaded", "file", path, "url", url)
	return url, nil
}
