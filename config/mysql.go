package config

import (
	"fmt"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"net/url"
	"strings"
)

// MySQLOption for MySQL options
type MySQLOption struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

// MySQLConfig for configuring MySQL
type MySQLConfig struct {
	Host         string        `mapstructure:"host"`
	Port         uint16        `mapstructure:"port"`
	Database     string        `mapstructure:"database"`
	Username     string        `mapstructure:"username"`
	Password     string        `mapstructure:"password"`
	MaxOpenConns int           `mapstructure:"max_open_conns"`
	MaxIdleConns int           `mapstructure:"max_idle_conns"`
	Options      []MySQLOption `mapstructure:"options"`
}

func (c MySQLConfig) optionsString() string {
	var opts []string
	for _, o := range c.Options {
		key := url.QueryEscape(o.Key)
		value := url.QueryEscape(o.Value)
		opts = append(opts, key+"="+value)
	}
	return strings.Join(opts, "&")
}

// DSN returns data source name
func (c MySQLConfig) DSN() string {
	optStr := c.optionsString()
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", c.Username, c.Password, c.Host, c.Port, c.Database, optStr)
}

// MigrateDSN is the data source name in the format of golang-migrate
func (c MySQLConfig) MigrateDSN() string {
	dsn := c.DSN()
	if len(c.Options) > 0 {
		dsn += "&"
	}
	return "mysql://" + dsn + "multiStatements=true"
}

// MustConnect connects to database using sqlx, the mysql driver must be imported by the caller
func (c MySQLConfig) MustConnect(logger *zap.Logger) *sqlx.DB {
	db := sqlx.MustConnect("mysql", c.DSN())

	logger.Info("Connected to MySQL",
		zap.String("database", c.Database),
		zap.Int("maxOpenConns", c.MaxOpenConns),
		zap.Int("maxIdleConns", c.MaxIdleConns),
		zap.String("options", c.optionsString()),
	)

	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	return db
}
