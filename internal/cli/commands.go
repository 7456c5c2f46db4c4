package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// filterFlag binds a command-line flag to a list filter parameter.
type filterFlag struct {
	flag  string
	param string
	usage string
}

// newListCmd creates "<section> list" with --page and one flag per filter.
func newListCmd(section model.Section, filters ...filterFlag) *cobra.Command {
	var page int
	values := make(map[string]*string, len(filters))

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + section.String(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set := make(map[string]string, len(values))
			for param, v := range values {
				set[param] = *v
			}
			return runSection(cmd, section, page, set)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page to show")
	for _, f := range filters {
		values[f.param] = cmd.Flags().String(f.flag, "", f.usage)
	}
	return cmd
}

// runSection shows page of section through a console controller.
func runSection(cmd *cobra.Command, section model.Section, page int, filters map[string]string) error {
	v := newTermView(cmd, filters)
	ctrl := v.controller()
	defer ctrl.Charts().Release()

	if err := ctrl.OpenAt(cmd.Context(), section, page); err != nil {
		return reported(err)
	}
	return v.Err()
}

// newDeleteCmd creates "<section> delete ID".
func newDeleteCmd(section model.Section, short string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			v := quietView(cmd)
			return reported(v.controller().Delete(cmd.Context(), section, id))
		},
	}
}

// quietView is a view for mutations: alerts are shown, reloads are not.
func quietView(cmd *cobra.Command) *termView {
	v := newTermView(cmd, nil)
	v.lists = false
	return v
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("无效的编号: %q", s)
	}
	return id, nil
}

// done reports a created or updated record: the record itself in json/yaml
// output, msg otherwise.
func done(cmd *cobra.Command, record any, msg string) error {
	p := newPrinter(cmd)
	if p.structured() {
		return p.encode(record)
	}
	_, err := fmt.Fprintln(p.out, msg)
	return err
}
