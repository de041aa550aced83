package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/gantry/internal/repository"
	"github.com/alexanderramin/gantry/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A write failure midway through an import must leave no partial project.
func TestImportService_MidImportFailureRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	boom := errors.New("write failed")
	// Exec 1 is the project row, 2 through 4 are tasks; fail on the third.
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: boom}
	svc := NewImportService(uow)

	_, err := svc.ImportProjectFromSchema(ctx, importSchema())
	require.ErrorIs(t, err, boom)

	projects, err := repository.NewSQLiteProjectRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}
