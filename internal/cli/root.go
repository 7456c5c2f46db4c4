package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bestxiangest/Goods-Trading-Center/internal/adminapi"
	"github.com/bestxiangest/Goods-Trading-Center/internal/config"
	"github.com/bestxiangest/Goods-Trading-Center/internal/logging"
	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// annotationSession marks commands that need a stored admin login.
const annotationSession = "gtc/session"

var (
	flagConfig    string
	flagServer    string
	flagPerPage   int
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string
	flagOutput    string

	cfg     config.Config
	logger  *slog.Logger
	api     *adminapi.Client
	session *model.Session
)

// flagKeys maps persistent flags onto config keys.
var flagKeys = map[string]string{
	"server":     "api.base_url",
	"per-page":   "list.per_page",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// NewRootCmd creates the root cobra command for the gtc-admin CLI.
func NewRootCmd() *cobra.Command {
	defaults := config.Default()
	root := &cobra.Command{
		Use:   "gtc-admin",
		Short: "Goods Trading Center admin console",
		Long:  "gtc-admin manages the users, items, categories, trade requests, reviews and messages of a Goods Trading Center backend.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(cmd); err != nil {
				return err
			}
			if !needsSession(cmd) {
				return nil
			}
			sess, err := loadSession()
			if err != nil {
				return err
			}
			session = sess
			logger.Debug("using stored session", "username", sess.DisplayName())
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default ./gtc.yaml or ~/.gtc/gtc.yaml)")
	pf.StringVar(&flagServer, "server", defaults.API.BaseURL, "Backend API base URL (or GTC_API_BASE_URL env)")
	pf.IntVar(&flagPerPage, "per-page", defaults.List.PerPage, "Rows per list page")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	pf.StringVar(&flagLogLevel, "log-level", defaults.Log.Level, "Log level (debug, info, warn, error)")
	pf.StringVar(&flagLogFormat, "log-format", defaults.Log.Format, "Log format (text, json)")
	pf.StringVarP(&flagOutput, "output", "o", formatTable, "Output format (table, json, yaml)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newDashboardCmd(),
		newUsersCmd(),
		newItemsCmd(),
		newCategoriesCmd(),
		newRequestsCmd(),
		newReviewsCmd(),
		newMessagesCmd(),
		newUploadCmd(),
	)

	return root
}

// setup loads the configuration and builds the logger and API client.
func setup(cmd *cobra.Command) error {
	switch flagOutput {
	case formatTable, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", flagOutput)
	}

	v := config.New()
	pf := cmd.Root().PersistentFlags()
	for name, key := range flagKeys {
		if err := config.BindFlag(v, key, pf.Lookup(name)); err != nil {
			return err
		}
	}
	loaded, err := config.Load(v, flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded
	if flagDebug {
		cfg.Log.Level = "debug"
	}

	logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format, cmd.ErrOrStderr())
	api = adminapi.NewClient(cfg.API.BaseURL, logger, adminapi.WithTimeout(cfg.API.Timeout))
	return nil
}

// requireSession marks cmd and its subcommands as needing a stored login.
func requireSession(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationSession] = "required"
	return cmd
}

func needsSession(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationSession] == "required" {
			return true
		}
	}
	return false
}

// reportedError is a failure the console controller already showed as an alert.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// reported wraps err, if any, as already shown to the operator.
func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// Execute runs gtc-admin and prints any error not already shown.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	var rep *reportedError
	if err != nil && !errors.As(err, &rep) {
		fmt.Fprintln(os.Stderr, "错误:", model.Describe(err))
	}
	return err
}
