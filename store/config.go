package store

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-sql-driver/mysql"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// Config describes the MySQL database holding issued Guids.
type Config struct {
	Addr   string // host:port
	User   string
	Passwd string
	DBName string
	Table  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultConfig returns a Config for a local server with the pool settings
// used in production.
func DefaultConfig() Config {
	return Config{
		Addr:            "127.0.0.1:3306",
		Table:           "guids",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
	}
}

// Validate checks the fields that end up in SQL text.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("store: empty address")
	}
	if !tableName.MatchString(c.Table) {
		return fmt.Errorf("store: invalid table name %q", c.Table)
	}
	return nil
}

// DSN renders the driver connection string.
func (c Config) DSN() string {
	m := mysql.NewConfig()
	m.Net = "tcp"
	m.Addr = c.Addr
	m.User = c.User
	m.Passwd = c.Passwd
	m.DBName = c.DBName
	m.ParseTime = true
	return m.FormatDSN()
}
