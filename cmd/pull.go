package cmd

import (
	"errors"
	"fmt"

	"github.com/hyakukg/hyaku/internal/config"
	"github.com/hyakukg/hyaku/internal/storage"
	"github.com/hyakukg/hyaku/internal/utils"
	"github.com/spf13/cobra"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Restore the profile and training logs from the configured database",
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

		profile, err := st.GetProfile()
		if err != nil {
			return fmt.Errorf("Failed to pull profile: %w", err)
		}
		if profile != nil {
			session.Profile = *profile
		}

		logs, err := st.GetTrainingLogs()
		if err != nil {
			return fmt.Errorf("Failed to pull training logs: %w", err)
		}
		added := session.MergeLogs(logs)

		if err := utils.SaveSession(session); err != nil {
			return fmt.Errorf("Failed to save state: %w", err)
		}

		if profile == nil {
			fmt.Println("No remote profile yet, nothing to restore")
		} else {
			fmt.Println("✅ Profile restored from the database")
		}
		fmt.Printf("✅ %d new log entries pulled\n", added)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)
}
