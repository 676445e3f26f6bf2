// Package configutil resolves settings that can arrive either as an explicit
// command flag or through viper (config file / environment). An explicitly
// set flag always wins.
package configutil

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func FlagOrViperString(cmd *cobra.Command, flagName, viperKey string) string {
	if cmd != nil && cmd.Flags().Changed(flagName) {
		v, _ := cmd.Flags().GetString(flagName)
		return v
	}
	if viperKey != "" {
		return viper.GetString(viperKey)
	}
	if cmd == nil {
		return ""
	}
	v, _ := cmd.Flags().GetString(flagName)
	return v
}

func FlagOrViperBool(cmd *cobra.Command, flagName, viperKey string) bool {
	if cmd != nil && cmd.Flags().Changed(flagName) {
		v, _ := cmd.Flags().GetBool(flagName)
		return v
	}
	if viperKey != "" {
		return viper.GetBool(viperKey)
	}
	if cmd == nil {
		return false
	}
	v, _ := cmd.Flags().GetBool(flagName)
	return v
}

func FlagOrViperInt(cmd *cobra.Command, flagName, viperKey string) int {
	if cmd != nil && cmd.Flags().Changed(flagName) {
		v, _ := cmd.Flags().GetInt(flagName)
		return v
	}
	if viperKey != "" {
		return viper.GetInt(viperKey)
	}
	if cmd == nil {
		return 0
	}
	v, _ := cmd.Flags().GetInt(flagName)
	return v
}

func FlagOrViperDuration(cmd *cobra.Command, flagName, viperKey string) time.Duration {
	if cmd != nil && cmd.Flags().Changed(flagName) {
		v, _ := cmd.Flags().GetDuration(flagName)
		return v
	}
	if viperKey != "" {
		return viper.GetDuration(viperKey)
	}
	if cmd == nil {
		return 0
	}
	v, _ := cmd.Flags().GetDuration(flagName)
	return v
}
