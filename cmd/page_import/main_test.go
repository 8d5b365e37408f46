package main

import (
	"testing"
	"time"

	"github.com/DjordjeVuckovic/site-pager/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckImportTarget(t *testing.T) {
	assert.ErrorIs(t, checkImportTarget(storage.InMem), errVolatileStorage)
	assert.NoError(t, checkImportTarget(storage.PG))
	assert.NoError(t, checkImportTarget(storage.ES))
}

func TestRun_RejectsInMem(t *testing.T) {
	t.Setenv("STORAGE_TYPE", string(storage.InMem))

	err := run("", time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, errVolatileStorage)
}
