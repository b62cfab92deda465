package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewDeskRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewDeskRepository(pool)
	assert.NotNil(t, repo)
}

func TestMigrate_BadDSN(t *testing.T) {
	err := Migrate("host=127.0.0.1 port=1 user=x dbname=x sslmode=disable connect_timeout=1", "file://../../migrations", nil)
	assert.Error(t, err)
}
