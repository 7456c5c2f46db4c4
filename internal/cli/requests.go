package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

func newRequestsCmd() *cobra.Command {
	cmd := requireSession(&cobra.Command{
		Use:   "requests",
		Short: "Manage trade requests",
	})
	cmd.AddCommand(
		newListCmd(model.SectionRequests,
			filterFlag{flag: "status", param: "status", usage: "Request status (" + statusList() + ")"},
		),
		newRequestShowCmd(),
		newRequestAddCmd(),
		newRequestUpdateCmd(),
		newRequestStatusCmd(),
		newDeleteCmd(model.SectionRequests, "Delete a trade request"),
	)
	return cmd
}

func statusList() string {
	names := make([]string, len(model.RequestStatuses))
	for i, s := range model.RequestStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func newRequestShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a trade request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			r, err := api.GetRequest(cmd.Context(), id)
			if err != nil {
				return err
			}
			return newPrinter(cmd).record(r, [][2]string{
				{"ID", strconv.Itoa(r.RequestID)},
				{"物品", fmt.Sprintf("%s (#%d)", orDash(r.ItemTitle), r.ItemID)},
				{"请求者", fmt.Sprintf("%s (#%d)", orDash(r.RequesterUsername), r.RequesterID)},
				{"物主", orDash(r.Owner())},
				{"状态", r.Status.Label()},
				{"留言", orDash(deref(r.Message))},
				{"创建时间", timeAgo(r.CreatedAt)},
				{"更新时间", timeAgo(r.UpdatedAt)},
			})
		},
	}
}

func newRequestAddCmd() *cobra.Command {
	var (
		in      model.NewTradeRequest
		message string
		status  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a trade request on behalf of a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("message") {
				in.Message = &message
			}
			in.Status = model.RequestStatus(status)
			r, err := api.CreateRequestAdmin(cmd.Context(), in)
			if err != nil {
				return err
			}
			return done(cmd, r, fmt.Sprintf("交易请求创建成功 (ID %d)", r.RequestID))
		},
	}
	f := cmd.Flags()
	f.IntVar(&in.ItemID, "item", 0, "Item ID")
	f.IntVar(&in.RequesterID, "requester", 0, "Requesting user ID")
	f.StringVar(&message, "message", "", "Message to the owner")
	f.StringVar(&status, "status", string(model.RequestPending), "Initial status ("+statusList()+")")
	return cmd
}

func newRequestUpdateCmd() *cobra.Command {
	var message, status string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a trade request's message or status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var in model.TradeRequestUpdate
			if cmd.Flags().Changed("message") {
				in.Message = &message
			}
			in.Status = model.RequestStatus(status)

			r, err := api.UpdateRequestAdmin(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			return done(cmd, r, "交易请求更新成功")
		},
	}
	cmd.Flags().StringVar(&message, "message", "", "New message")
	cmd.Flags().StringVar(&status, "status", "", "New status ("+statusList()+")")
	return cmd
}

func newRequestStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move a trade request to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status := model.RequestStatus(args[1])
			if !status.Valid() {
				return fmt.Errorf("%s: %q (可选: %s)", model.MsgUnknownStatus, args[1], statusList())
			}
			return reported(quietView(cmd).controller().SetRequestStatus(cmd.Context(), id, status))
		},
	}
}
