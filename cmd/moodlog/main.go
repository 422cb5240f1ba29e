package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/moodlogapp/moodlog/internal/api"
	"github.com/moodlogapp/moodlog/internal/cli"
	"github.com/moodlogapp/moodlog/internal/cli/auth"
	"github.com/moodlogapp/moodlog/internal/cli/entries"
	"github.com/moodlogapp/moodlog/internal/cli/statistics"
	"github.com/moodlogapp/moodlog/internal/cli/system"
	"github.com/moodlogapp/moodlog/internal/constants"
	"github.com/moodlogapp/moodlog/internal/errors"
	"github.com/moodlogapp/moodlog/internal/logger"
	"github.com/moodlogapp/moodlog/internal/session"
	"github.com/moodlogapp/moodlog/internal/storage"
)

var CLI struct {
	Version   kong.VersionFlag
	Server    string `help:"Backend server URL." env:"MOODLOG_SERVER" default:"${server}"`
	ConfigDir string `help:"Config directory (token fallback, cache, logs)." env:"MOODLOG_CONFIG_DIR" default:"${config_dir}"`
	Debug     bool   `help:"Enable debug logging to stderr."`

	Login    auth.LoginCmd    `cmd:"" help:"Sign in and store the session token."`
	Register auth.RegisterCmd `cmd:"" help:"Create an account and sign in."`
	Logout   auth.LogoutCmd   `cmd:"" help:"Discard the stored session token."`
	Whoami   auth.WhoamiCmd   `cmd:"" help:"Show session status."`
	Tui      system.TuiCmd    `cmd:"" help:"Launch the interactive journal." default:"1"`
	Doctor   system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Entry    struct {
		Add    entries.EntryAddCmd    `cmd:"" help:"Write a new entry and analyze it."`
		List   entries.EntryListCmd   `cmd:"" help:"List entries with search and sort."`
		Show   entries.EntryShowCmd   `cmd:"" help:"Show one entry with its analysis."`
		Delete entries.EntryDeleteCmd `cmd:"" help:"Delete an entry."`
	} `cmd:"" help:"Manage journal entries."`
	Stats      statistics.StatsCmd      `cmd:"" help:"Show the aggregated dashboard."`
	Insights   statistics.InsightsCmd   `cmd:"" help:"Show generated insights over the statistics."`
	Techniques statistics.TechniquesCmd `cmd:"" help:"Get coping techniques for a distortion type."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal mood journal with cognitive distortion analysis"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":    constants.Version,
			"server":     constants.DefaultServerURL,
			"config_dir": constants.DefaultConfigDir,
		},
	)

	configDir := expandHome(CLI.ConfigDir)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		errors.Fatal(errors.Wrap(err, "unable to create config directory"))
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatal(errors.Wrap(err, "unable to initialize logging"))
	}

	sess := session.New(configDir)
	client := api.New(CLI.Server, sess)

	// The cache is optional: commands degrade to server-only when it
	// cannot be opened.
	var cache storage.Cache
	sqliteCache := storage.NewSQLiteCache(filepath.Join(configDir, constants.CacheFileName))
	if err := sqliteCache.Init(); err != nil {
		logger.Warn("Local cache unavailable", "error", err)
	} else {
		cache = sqliteCache
		defer sqliteCache.Close()
	}

	appCtx := &cli.Context{
		Client:    client,
		Session:   sess,
		Cache:     cache,
		ConfigDir: configDir,
	}

	errors.Fatal(ctx.Run(appCtx))
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
