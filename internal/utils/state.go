package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/hyakukg/hyaku/internal/models"
)

func getStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "hyaku")
	os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "state.toml"), nil
}

func SaveSession(session *models.Session) error {
	path, err := getStatePath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(session)
}

func LoadSession() (*models.Session, error) {
	path, err := getStatePath()
	if err != nil {
		return nil, err
	}

	var session models.Session
	_, err = toml.DecodeFile(path, &session)
	if err != nil {
		return nil, err
	}

	return &session, nil
}

func ClearSession() error {
	path, err := getStatePath()
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func SessionExists() bool {
	path, err := getStatePath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return !os.IsNotExist(err)
}
