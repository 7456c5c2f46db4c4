package cli

import (
	"github.com/spf13/cobra"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

func newReviewsCmd() *cobra.Command {
	cmd := requireSession(&cobra.Command{
		Use:   "reviews",
		Short: "Moderate user reviews",
	})
	cmd.AddCommand(
		newListCmd(model.SectionReviews,
			filterFlag{flag: "rating", param: "rating", usage: "Star rating (1-5)"},
		),
		newDeleteCmd(model.SectionReviews, "Delete a review"),
	)
	return cmd
}

func newMessagesCmd() *cobra.Command {
	cmd := requireSession(&cobra.Command{
		Use:   "messages",
		Short: "Moderate platform messages",
	})
	cmd.AddCommand(
		newListCmd(model.SectionMessages,
			filterFlag{flag: "type", param: "type", usage: "Message type (request_notification, status_update, system_announcement, chat_message)"},
			filterFlag{flag: "read", param: "is_read", usage: "Read state (true, false)"},
		),
		newDeleteCmd(model.SectionMessages, "Delete a message"),
	)
	return cmd
}
