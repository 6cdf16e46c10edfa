package cmd

import (
	"errors"
	"fmt"

	"github.com/hyakukg/hyaku/internal/config"
	"github.com/hyakukg/hyaku/internal/storage"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push the profile and training logs to the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("Failed to load config: %w", err)
		}

		st, err := storage.NewStorage(cfg.DB.ConnectionString)
		if err != nil {
			if errors.Is(err, storage.ErrNotConfigured) {
				return fmt.Errorf("No database configured. Set TURSO_DATABASE_URL or [database] in config.toml")
			}
			return fmt.Errorf("Failed to open database: %w", err)
		}
		defer st.Close()

		if err := st.SaveProfile(session.Profile); err != nil {
			return fmt.Errorf("Failed to sync profile: %w", err)
		}

		synced, err := st.SyncTrainingLogs(session.TrainingLogs)
		if err != nil {
			return fmt.Errorf("Failed to sync training logs: %w", err)
		}

		fmt.Printf("✅ Profile synced, %d new log entries pushed\n", synced)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
