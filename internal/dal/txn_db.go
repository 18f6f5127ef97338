package dal

import (
	"fmt"
	"log"
	"time"

	"iso-rate-api/internal/config"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// TxnDB holds the transaction aggregates fed by the ingestion pipeline.
// The core only reads from it.
var TxnDB *gorm.DB

func InitTxnDB() {
	c := config.C.MysqlTxn
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		c.Username, c.Password, c.Host, c.Port, c.Database, c.Charset)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect txn db failed: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(2 * time.Hour)
	TxnDB = db
}
