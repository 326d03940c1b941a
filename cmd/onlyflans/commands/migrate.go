package commands

import (
	"github.com/spf13/cobra"
	"onlyflans/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := db.Open(cfg.DB, log)
		if err != nil {
			return err
		}
		defer func() {
			if sqlDB, err := conn.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}()
		return db.Migrate(conn, log)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
