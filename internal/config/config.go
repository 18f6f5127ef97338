package config

import (
	"flag"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type ServerCfg struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}
type MysqlCfg struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Database     string `mapstructure:"database"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Charset      string `mapstructure:"charset"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}
type RabbitCfg struct {
	URL string `mapstructure:"url"`
}
type RedisCfg struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}
type SecurityCfg struct {
	JWTSecret string `mapstructure:"jwtSecret"`
}
type SettlementCfg struct {
	MinimumPayout      string `mapstructure:"minimumPayout"` // currency units, e.g. "100.00"
	InvoiceDeadlineDay int    `mapstructure:"invoiceDeadlineDay"`
	PaymentDeadlineDay int    `mapstructure:"paymentDeadlineDay"`
}
type SweepCfg struct {
	Enabled bool `mapstructure:"enabled"`
}

type Root struct {
	Server     ServerCfg     `mapstructure:"server"`
	MysqlMain  MysqlCfg      `mapstructure:"mysql_main"`
	MysqlTxn   MysqlCfg      `mapstructure:"mysql_txn"`
	RabbitMQ   RabbitCfg     `mapstructure:"rabbitmq"`
	Redis      RedisCfg      `mapstructure:"redis"`
	Security   SecurityCfg   `mapstructure:"security"`
	Settlement SettlementCfg `mapstructure:"settlement"`
	Sweep      SweepCfg      `mapstructure:"sweep"`
}

var C Root

func Init() {
	env := flag.String("env", "dev", "config env: dev|prod")
	flag.Parse()

	v := viper.New()
	v.SetConfigFile("config/config." + *env + ".yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config file failed: %v", err)
	}
	if err := v.Unmarshal(&C); err != nil {
		log.Fatalf("unmarshal config failed: %v", err)
	}
	sanitize(&C)
}

// sanitize fills defaults and rejects unusable values. A malformed
// minimum payout must not silently become a zero threshold.
func sanitize(c *Root) {
	if strings.TrimSpace(c.Server.Port) == "" {
		c.Server.Port = "8080"
	}
	if _, err := decimal.NewFromString(c.Settlement.MinimumPayout); err != nil {
		if strings.TrimSpace(c.Settlement.MinimumPayout) != "" {
			log.Printf("invalid settlement.minimumPayout %q, using 100.00", c.Settlement.MinimumPayout)
		}
		c.Settlement.MinimumPayout = "100.00"
	}
	if c.Settlement.InvoiceDeadlineDay <= 0 {
		c.Settlement.InvoiceDeadlineDay = 10
	}
	if c.Settlement.PaymentDeadlineDay <= 0 {
		c.Settlement.PaymentDeadlineDay = 20
	}
}
