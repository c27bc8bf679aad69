package main

import (
	"flag"
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr    string `yaml:"addr"`
	DataDir string `yaml:"data_dir"`
}

func defaultConfig() Config {
	return Config{Addr: ":9092", DataDir: "./data"}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(data, &cfg)
	return cfg, err
}

// applyFlags overrides config values with any flag set on the command line.
func applyFlags(cfg *Config, addr, dir string) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["addr"] || cfg.Addr == "" {
		cfg.Addr = addr
	}
	if set["dir"] || cfg.DataDir == "" {
		cfg.DataDir = dir
	}
}
