package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/wansing/blog/config"
	"github.com/wansing/blog/core"
	"github.com/wansing/blog/logger"
	"github.com/wansing/blog/sqldb"
	"go.uber.org/zap"
)

// config keys which can be set by command line flags, by flag name
var flagKeys = map[string]string{
	"base":       "server.base",
	"db":         "database.url",
	"listen":     "server.listen",
	"log-format": "log.format",
	"log-level":  "log.level",
}

func newRootCmd() *cobra.Command {

	var rootCmd = &cobra.Command{
		Use:   "blog",
		Short: "A small multi-user blog",
		Long: `blog serves a multi-user blog with signup, login, markdown posts and view counting.

Settings are read from the ini file given by --config, a .env file, BLOG_* environment variables and command line flags, in this order.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "read settings from this ini `file`")
	// MySQL: collation should be utf8mb4_unicode_ci
	rootCmd.PersistentFlags().String("db", "", "sql database url, see github.com/xo/dburl")
	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "console or json")

	rootCmd.AddCommand(
		newServeCmd(),
		newUseraddCmd(),
		newUsersCmd(),
		newProfileCmd(),
		newPostsCmd(),
	)

	return rootCmd
}

// loadConfig applies the flags which have been set explicitly on top of the config file and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var overrides = make(map[string]string)
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag != nil && flag.Changed {
			overrides[key] = flag.Value.String()
		}
	}
	configPath, _ := cmd.Flags().GetString("config")
	return config.Load(configPath, overrides)
}

// An app holds the database and stores which all commands share.
type app struct {
	cfg      *config.Config
	log      *zap.SugaredLogger
	sqlDB    *sqlx.DB
	accounts *sqldb.AccountDB
	db       *core.CoreDB
}

func openApp(ctx context.Context, cmd *cobra.Command) (*app, error) {

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sqldb.Open(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	if err := sqldb.Migrate(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}

	log.Debugw("using database", "driver", sqlDB.DriverName())

	var accounts = sqldb.NewAccountDB(sqlDB)

	return &app{
		cfg:      cfg,
		log:      log,
		sqlDB:    sqlDB,
		accounts: accounts,
		db: &core.CoreDB{
			AccountDB: accounts,
			PostDB:    sqldb.NewPostDB(sqlDB),
			ProfileDB: sqldb.NewProfileDB(sqlDB),
			Log:       log,
		},
	}, nil
}

func (a *app) Close() {
	a.log.Debug("closing database")
	a.sqlDB.Close()
	a.log.Sync()
}

// printResult writes the notifications of a workflow result to cmd and returns its error.
func printResult(cmd *cobra.Command, result core.Result) error {
	for _, n := range result.Notifications {
		fmt.Fprintln(cmd.OutOrStdout(), n.Message)
	}
	return result.Err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
