// Package azure connects the scanner to a subscription. Authentication
// rides on the Azure CLI: the user logs in with az login and we pick up
// the session through AzureCLICredential, so the tool never handles
// secrets itself.
package azure

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

const cliTimeout = 30 * time.Second

// Account describes one Azure CLI account entry.
type Account struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TenantID  string `json:"tenantId"`
	State     string `json:"state"`
	IsDefault bool   `json:"isDefault"`
}

// FindCLI locates the az executable. PATH wins; on Windows the common
// MSI installation directories are checked as a fallback.
func FindCLI() (string, error) {
	for _, name := range []string{"az", "az.cmd"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	if runtime.GOOS == "windows" {
		candidates := []string{
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Programs", "Microsoft SDKs", "Azure", "CLI2", "wbin", "az.cmd"),
			`C:\Program Files\Microsoft SDKs\Azure\CLI2\wbin\az.cmd`,
			`C:\Program Files (x86)\Microsoft SDKs\Azure\CLI2\wbin\az.cmd`,
		}
		for _, path := range candidates {
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}

	return "", fmt.Errorf("azure cli not found, install it from https://aka.ms/installazurecli")
}

// CurrentAccount returns the Azure CLI's default account from
// az account show.
func CurrentAccount(ctx context.Context) (*Account, error) {
	out, err := runCLI(ctx, "account", "show", "--output", "json")
	if err != nil {
		return nil, fmt.Errorf("not logged in to azure, run 'az login' first: %w", err)
	}
	return parseAccount(out)
}

// ListSubscriptions returns all enabled subscriptions visible to the
// logged-in account.
func ListSubscriptions(ctx context.Context) ([]Account, error) {
	out, err := runCLI(ctx, "account", "list", "--output", "json")
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}
	return parseAccountList(out)
}

func runCLI(ctx context.Context, args ...string) ([]byte, error) {
	azPath, err := FindCLI()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cliTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, azPath, args...).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("az %s: %s", args[0], exitErr.Stderr)
		}
		return nil, fmt.Errorf("az %s: %w", args[0], err)
	}
	return out, nil
}

func parseAccount(data []byte) (*Account, error) {
	var account Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, fmt.Errorf("parsing az account output: %w", err)
	}
	if account.ID == "" {
		return nil, fmt.Errorf("no subscription found, run 'az login' first")
	}
	return &account, nil
}

func parseAccountList(data []byte) ([]Account, error) {
	var all []Account
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("parsing az account list output: %w", err)
	}

	enabled := make([]Account, 0, len(all))
	for _, account := range all {
		if account.State == "Enabled" {
			enabled = append(enabled, account)
		}
	}
	return enabled, nil
}
