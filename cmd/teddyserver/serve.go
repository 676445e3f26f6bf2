package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/GS-Software-Solutions/TeddyServer/gsapi"
	"github.com/GS-Software-Solutions/TeddyServer/internal/configutil"
	"github.com/GS-Software-Solutions/TeddyServer/internal/logutil"
	"github.com/GS-Software-Solutions/TeddyServer/internal/runtimeclock"
	"github.com/GS-Software-Solutions/TeddyServer/session"
	"github.com/GS-Software-Solutions/TeddyServer/teddy"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the account loops until terminated",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logutil.LoggerFromViper()
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			apiURL := strings.TrimSpace(configutil.FlagOrViperString(cmd, "completion-api-url", "completion.api_url"))
			if apiURL == "" {
				return fmt.Errorf("missing completion.api_url (set via --completion-api-url or %s_COMPLETION_API_URL)", envPrefix)
			}
			apiKey := strings.TrimSpace(configutil.FlagOrViperString(cmd, "completion-api-key", "completion.api_key"))
			if apiKey == "" {
				return fmt.Errorf("missing completion.api_key (set via --completion-api-key or %s_COMPLETION_API_KEY)", envPrefix)
			}

			accounts, err := loadAccounts()
			if err != nil {
				return err
			}

			vendor := teddy.New(teddy.Config{
				BaseURL:        viper.GetString("chat_api.base_url"),
				SysBaseURL:     viper.GetString("chat_api.sys_base_url"),
				RequestTimeout: viper.GetDuration("chat_api.request_timeout"),
			})
			completer := gsapi.New(gsapi.Config{
				APIURL:           apiURL,
				APIKey:           apiKey,
				ExtensionVersion: viper.GetString("completion.extension_version"),
				RequestTimeout:   viper.GetDuration("completion.request_timeout"),
			})

			clock := runtimeclock.System()
			pollInterval := configutil.FlagOrViperDuration(cmd, "poll-interval", "poll.interval")
			pollMaxAttempts := configutil.FlagOrViperInt(cmd, "poll-max-attempts", "poll.max_attempts")
			cooldown := configutil.FlagOrViperDuration(cmd, "cooldown", "cooldown")

			runners := make([]session.Runner, 0, len(accounts))
			for _, account := range accounts {
				runners = append(runners, &session.Orchestrator{
					Account:   account,
					Client:    vendor,
					Completer: completer,
					Poller: &session.Poller{
						Interval:    pollInterval,
						MaxAttempts: pollMaxAttempts,
						Clock:       clock,
						Logger:      logger.With("account", account.Username),
					},
					Cooldown: cooldown,
					Clock:    clock,
					Logger:   logger,
				})
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info("serve_start",
				"accounts", len(accounts),
				"environment", viper.GetString("environment"),
				"vendor_base_url", vendor.BaseURL,
				"completion_api_url", apiURL,
			)

			scheduler := &session.Scheduler{
				Stagger: configutil.FlagOrViperDuration(cmd, "stagger", "stagger"),
				Clock:   clock,
				Logger:  logger,
			}
			scheduler.Run(ctx, runners)

			logger.Info("serve_stop")
			return nil
		},
	}

	cmd.Flags().String("accounts", "", "Path to the accounts YAML file.")
	_ = viper.BindPFlag("accounts.file", cmd.Flags().Lookup("accounts"))
	cmd.Flags().String("completion-api-url", "", "Completion service base URL.")
	cmd.Flags().String("completion-api-key", "", "Completion service API key.")
	cmd.Flags().Duration("poll-interval", 0, "Delay between message-check attempts.")
	cmd.Flags().Int("poll-max-attempts", 0, "Message-check attempts before giving up on a cycle.")
	cmd.Flags().Duration("cooldown", 0, "Pause between cycles of one account.")
	cmd.Flags().Duration("stagger", 0, "Start offset between consecutive accounts.")

	return cmd
}
