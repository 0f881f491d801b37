package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	//日志级别: trace, debug, info, warn, error
	LogLevel string `toml:"log-level"`
	//traverse默认的遍历方式
	Order string `toml:"order"`
	//使用递归方式插入
	RecursiveInsert bool `toml:"recursive-insert"`
	//以json格式输出
	JSON bool `toml:"json"`
	//命令行没有给出值时使用的初始值
	Values []int `toml:"values"`
}

const (
	OrderPre   = "pre"
	OrderIn    = "in"
	OrderPost  = "post"
	OrderBFS   = "bfs"
	OrderStack = "stack"
)

var Orders = []string{OrderPre, OrderIn, OrderPost, OrderBFS, OrderStack}

func Default() Config {
	return Config{
		LogLevel: "info",
		Order:    OrderIn,
	}
}

// Load reads a TOML file on top of the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	con := Default()
	if path == "" {
		return con, nil
	}
	if _, err := os.Stat(path); err != nil {
		return Config{}, errors.Wrapf(err, "no such config file: %s", path)
	}
	if _, err := toml.DecodeFile(path, &con); err != nil {
		return Config{}, errors.Wrapf(err, "decoding config %s", path)
	}
	if err := con.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return con, nil
}

func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Newf("unknown log-level %q", c.LogLevel)
	}
	if !ValidOrder(c.Order) {
		return errors.Newf("unknown order %q, expected one of %v", c.Order, Orders)
	}
	return nil
}

func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func ValidOrder(order string) bool {
	for _, o := range Orders {
		if o == order {
			return true
		}
	}
	return false
}
