package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRepositories(t *testing.T) {
	assert.Nil(t, NewBlacklistRepository(nil).pool)
	assert.Nil(t, NewRequestLogRepository(nil).pool)
	assert.Nil(t, NewStatisticsRepository(nil).pool)
}
