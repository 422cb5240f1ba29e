// Package system holds commands about the client itself rather than the
// journal: environment diagnostics and the interactive TUI launcher.
package system

import (
	"fmt"
	"os"

	"github.com/moodlogapp/moodlog/internal/cli"
	"github.com/moodlogapp/moodlog/internal/keyring"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	ok := true

	ok = report("config directory", checkConfigDir(ctx.ConfigDir)) && ok
	ok = report("system keyring", checkKeyring()) && ok
	ok = report("session", checkSession(ctx)) && ok
	ok = report("server", checkServer(ctx)) && ok
	ok = report("local cache", checkCache(ctx)) && ok

	if !ok {
		return fmt.Errorf("some checks failed")
	}
	fmt.Println("\nAll checks passed.")
	return nil
}

func report(name string, err error) bool {
	if err != nil {
		fmt.Printf("✗ %-16s %s\n", name, err)
		return false
	}
	fmt.Printf("✓ %-16s ok\n", name)
	return true
}

func checkConfigDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("not accessible: %v", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

func checkKeyring() error {
	if !keyring.IsAvailable() {
		// Not fatal for the app (file fallback exists) but worth surfacing.
		return fmt.Errorf("unavailable, tokens fall back to a file in the config directory")
	}
	return nil
}

func checkSession(ctx *cli.Context) error {
	if !ctx.Session.Authenticated() {
		return fmt.Errorf("not logged in")
	}
	return nil
}

func checkServer(ctx *cli.Context) error {
	reqCtx, cancel := ctx.RequestContext()
	defer cancel()
	if err := ctx.Client.Ping(reqCtx); err != nil {
		return fmt.Errorf("unreachable: %v", err)
	}
	return nil
}

func checkCache(ctx *cli.Context) error {
	if ctx.Cache == nil {
		return fmt.Errorf("not initialized")
	}
	synced, err := ctx.Cache.SyncedAt()
	if err != nil {
		return err
	}
	if synced == "" {
		return fmt.Errorf("never synced (run 'moodlog entry list' while online)")
	}
	return nil
}
