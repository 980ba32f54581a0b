package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens a shared in-memory database and migrates the given models once per test run.
func NewDb(models ...any) *Db {
	if db == nil {
		once.Do(
			func() {
				db = open(models)
			},
		)
	}

	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		models: models,
	}

	if err := newDbMock.migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return newDbMock
}

func (d *Db) migrate() error {
	if err := d.DbConn.AutoMigrate(d.models...); err != nil {
		return err
	}

	for _, model := range d.models {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
	}

	return nil
}

// ClearDB removes every row so each scenario starts from an empty studio.
func (d *Db) ClearDB() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}

		stmt := &gorm.Statement{DB: d.DbConn}
		if err := stmt.Parse(model); err != nil {
			return err
		}

		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", stmt.Schema.Table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}

	return nil
}

// Count returns the number of rows stored for a model.
func (d *Db) Count(model any) (int64, error) {
	var count int64
	err := d.DbConn.Model(model).Count(&count).Error
	return count, err
}
