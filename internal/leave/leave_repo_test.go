package leave

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepositoryWithTxRoutesThroughTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	ctx := context.Background()
	repo := NewRepository(gdb).(*repository)

	t.Run("without tx uses the pool", func(t *testing.T) {
		_, isTx := repo.conn(ctx).Statement.ConnPool.(*sql.Tx)
		assert.False(t, isTx)
	})

	t.Run("with tx every statement runs on the tx connection", func(t *testing.T) {
		mock.ExpectBegin()
		tx, err := db.BeginTx(ctx, nil)
		assert.NoError(t, err)

		scoped := repo.WithTx(tx).(*repository)
		assert.Same(t, tx, scoped.conn(ctx).Statement.ConnPool)

		mock.ExpectRollback()
		assert.NoError(t, tx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
