package main

import (
	"time"

	"github.com/spf13/viper"
)

func initViperDefaults() {
	// production | development; development injects the fixed test account.
	viper.SetDefault("environment", "production")

	// Vendor API
	viper.SetDefault("chat_api.base_url", "https://teddy-mod.de/api")
	viper.SetDefault("chat_api.sys_base_url", "https://teddy-sys-mod.de/api/v1")
	viper.SetDefault("chat_api.request_timeout", 15*time.Second)

	// Completion service
	viper.SetDefault("completion.api_url", "")
	viper.SetDefault("completion.api_key", "")
	viper.SetDefault("completion.extension_version", "")
	viper.SetDefault("completion.request_timeout", 60*time.Second)

	// Per-account loop
	viper.SetDefault("poll.interval", 10*time.Second)
	viper.SetDefault("poll.max_attempts", 100)
	viper.SetDefault("cooldown", 30*time.Second)
	viper.SetDefault("stagger", 20*time.Second)

	// Accounts
	viper.SetDefault("accounts.file", "accounts.yaml")
	viper.SetDefault("dev_account.username", "")
	viper.SetDefault("dev_account.password", "")
}
