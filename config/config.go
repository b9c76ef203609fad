package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Driver selects the GORM dialector: "mysql" or "sqlite".
	Driver       string   `yaml:"Driver"`
	Database     string   `yaml:"Database"`
	Listen       string   `yaml:"Listen"`
	LogFile      string   `yaml:"LogFile"`
	AllowOrigins []string `yaml:"AllowOrigins"`
}

func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var conf Config
	if err := yaml.Unmarshal(buf, &conf); err != nil {
		return nil, err
	}

	if conf.Driver == "" {
		conf.Driver = "mysql"
	}
	if conf.Driver != "mysql" && conf.Driver != "sqlite" {
		return nil, fmt.Errorf("unknown driver %q", conf.Driver)
	}
	if conf.Listen == "" {
		conf.Listen = ":3001"
	}
	if len(conf.AllowOrigins) == 0 {
		conf.AllowOrigins = []string{"*"}
	}

	return &conf, nil
}
