package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns_Sqlite(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)

	type item struct {
		ID   uint   `gorm:"primaryKey"`
		Name string `gorm:"size:100"`
		Sku  string
	}
	assert.NoError(t, db.AutoMigrate(&item{}))

	columns, err := GetTableColumns(db, "items")
	assert.NoError(t, err)

	fields := make([]string, 0, len(columns))
	for _, col := range columns {
		fields = append(fields, col.Field)
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "sku")

	missing, err := HasColumns(db, "items", []string{"name", "sku", "unit_price"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"unit_price"}, missing)
}

func TestGetTableColumns_Mysql(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("Name", "VARCHAR(100)", "YES", "", nil, "").
		AddRow("Sku", "VARCHAR(255)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `items`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "items")
	assert.NoError(t, err)
	assert.Len(t, columns, 2)
	// Fields and types are normalized to lowercase
	assert.Equal(t, "name", columns[0].Field)
	assert.Equal(t, "varchar(100)", columns[0].Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}
