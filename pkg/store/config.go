package store

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk journal and the optional feedback question
// endpoint.
type Config interface {
	BasePath() string
	QuestionsURL() string
	AnalyticsEnabled() bool
	ShowDisable() bool
}

// LoadConfig reads .pixy (yaml implicit) from the working directory or
// PIXY_CONFIG_PATH, with PIXY_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.pixy.db")
	viper.SetDefault("analytics", true)
	viper.SetDefault("show_disable", false)
	viper.SetConfigName(".pixy")
	viper.SetEnvPrefix("PIXY")
	viper.AutomaticEnv()

	if override := os.Getenv("PIXY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &fileConfig{
		Path:        viper.GetString("path"),
		Questions:   viper.GetString("questions_url"),
		Analytics:   viper.GetBool("analytics"),
		Disablement: viper.GetBool("show_disable"),
	}, nil
}

type fileConfig struct {
	Path        string `json:"path"`
	Questions   string `json:"questions_url"`
	Analytics   bool   `json:"analytics"`
	Disablement bool   `json:"show_disable"`
}

func (f *fileConfig) BasePath() string {
	expanded, err := homedir.Expand(f.Path)
	if err != nil {
		return f.Path
	}
	return filepath.Clean(expanded)
}

func (f *fileConfig) QuestionsURL() string { return f.Questions }

func (f *fileConfig) AnalyticsEnabled() bool { return f.Analytics }

func (f *fileConfig) ShowDisable() bool { return f.Disablement }
