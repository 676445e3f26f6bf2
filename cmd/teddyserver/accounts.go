package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/GS-Software-Solutions/TeddyServer/session"
)

type accountsFile struct {
	Accounts []session.Account `yaml:"accounts"`
}

// loadAccounts resolves the account list. In development mode the fixed test
// account from config wins over the accounts file, so a developer never runs
// real accounts by mistake.
func loadAccounts() ([]session.Account, error) {
	if strings.EqualFold(strings.TrimSpace(viper.GetString("environment")), "development") {
		username := strings.TrimSpace(viper.GetString("dev_account.username"))
		password := viper.GetString("dev_account.password")
		if username == "" {
			return nil, fmt.Errorf("development mode requires dev_account.username")
		}
		return []session.Account{{Username: username, Password: password}}, nil
	}

	path := strings.TrimSpace(viper.GetString("accounts.file"))
	if path == "" {
		return nil, fmt.Errorf("missing accounts.file")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read accounts file: %w", err)
	}

	var doc accountsFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse accounts file: %w", err)
	}

	accounts := make([]session.Account, 0, len(doc.Accounts))
	for i, acc := range doc.Accounts {
		if strings.TrimSpace(acc.Username) == "" {
			return nil, fmt.Errorf("accounts file: entry %d has no username", i)
		}
		accounts = append(accounts, acc)
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("accounts file %s contains no accounts", path)
	}
	return accounts, nil
}
