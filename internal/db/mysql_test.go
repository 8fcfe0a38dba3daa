package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMySQLRejectsEmptyDSN(t *testing.T) {
	conn, err := NewMySQL("")
	assert.Nil(t, conn)
	assert.EqualError(t, err, "empty mysql dsn")
}
