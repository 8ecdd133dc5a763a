package main

type serverConfig struct {
	StatusListen string `toml:"status_listen"`
}

type p2poolConfig struct {
	DataAPIDir string `toml:"data_api_dir"`
}

type pageConfig struct {
	Title        string `toml:"title"`
	StratumTitle string `toml:"stratum_title"`
}

type loggingConfig struct {
	Level string `toml:"level"`
}

type baseFileConfig struct {
	Server  serverConfig  `toml:"server"`
	P2Pool  p2poolConfig  `toml:"p2pool"`
	Page    pageConfig    `toml:"page"`
	Logging loggingConfig `toml:"logging"`
}
