package config

import "fmt"

// MemcacheConfig ...
type MemcacheConfig struct {
	Host     string `mapstructure:"host"`
	Port     uint16 `mapstructure:"port"`
	NumConns int    `mapstructure:"num_conns"`
}

// Addr ...
func (c MemcacheConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Conns returns at least one connection
func (c MemcacheConfig) Conns() int {
	if c.NumConns <= 0 {
		return 1
	}
	return c.NumConns
}
