package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "127.0.0.1",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrong@password",
			Name:           "walkroute",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		require.NotNil(t, db)

		assert.NoError(t, Ping(context.Background(), db))
		assert.NoError(t, Close(db))
		assert.Error(t, Ping(context.Background(), db), "ping after close must fail")
	})
}

func TestDialectorFor_MySQLDSN(t *testing.T) {
	d, err := dialectorFor(Config{
		Driver:   DriverMySQL,
		Host:     "db",
		Port:     3306,
		User:     "walker",
		Password: "p@ss:w/rd",
		Name:     "walkroute",
	}, 5)
	require.NoError(t, err)

	dialector, ok := d.(*mysql.Dialector)
	require.True(t, ok)
	assert.Contains(t, dialector.DSN, "walker:p@ss:w/rd@tcp(db:3306)/walkroute?")
	assert.Contains(t, dialector.DSN, "parseTime=true")
	assert.Contains(t, dialector.DSN, "timeout=5s")
	assert.Contains(t, dialector.DSN, "charset=utf8mb4")
}
