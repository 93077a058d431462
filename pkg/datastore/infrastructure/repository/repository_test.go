package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/scylladb/gocqlx/v2/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trigg3rX/triggerx-cql/pkg/datastore/mocks"
	dserrors "github.com/trigg3rX/triggerx-cql/pkg/errors"
	"github.com/trigg3rX/triggerx-cql/pkg/logging"
	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

func newUserRepository(t *testing.T) (*mocks.MockQueryExecutor, *genericRepository[types.UserEntity]) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	executor := mocks.NewMockQueryExecutor(ctrl)
	repo := NewRepositoryFactory(executor, logging.NewNoOpLogger()).CreateUserRepository()
	return executor, repo.(*genericRepository[types.UserEntity])
}

func assertIdempotent(t *testing.T, def types.QueryDefinition) {
	t.Helper()
	idempotent, ok := def.Idempotent()
	assert.True(t, ok, def.Statement())
	assert.True(t, idempotent, def.Statement())
}

func TestGenericRepository_StatementsAreIdempotent(t *testing.T) {
	_, repo := newUserRepository(t)
	s := repo.stmts

	for _, def := range []types.QueryDefinition{s.insert, s.update, s.delete, s.get, s.list, s.count, s.countByID} {
		assertIdempotent(t, def)
	}
	assert.Equal(t, 1, s.keyColumns)
	assert.Equal(t, "user", repo.TableName())
}

func TestGenericRepository_Insert(t *testing.T) {
	executor, repo := newUserRepository(t)
	user := &types.UserEntity{ID: "u-1", Username: "alice"}

	executor.EXPECT().ExecuteStruct(gomock.Any(), gomock.Any(), user).
		DoAndReturn(func(_ context.Context, def types.QueryDefinition, _ interface{}) error {
			assert.Contains(t, def.Statement(), "INSERT INTO user")
			assert.Equal(t, []string{"id", "username"}, def.Names())
			return nil
		})

	assert.NoError(t, repo.Insert(context.Background(), user))
}

func TestGenericRepository_InsertError(t *testing.T) {
	executor, repo := newUserRepository(t)
	cause := errors.New("write timeout")
	executor.EXPECT().ExecuteStruct(gomock.Any(), gomock.Any(), gomock.Any()).Return(cause)

	err := repo.Insert(context.Background(), &types.UserEntity{ID: "u-1"})

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "insert into user")
}

func TestGenericRepository_Update(t *testing.T) {
	executor, repo := newUserRepository(t)
	user := &types.UserEntity{ID: "u-1", Username: "bob"}

	executor.EXPECT().ExecuteStruct(gomock.Any(), gomock.Any(), user).
		DoAndReturn(func(_ context.Context, def types.QueryDefinition, _ interface{}) error {
			assert.Contains(t, def.Statement(), "UPDATE user")
			assert.Equal(t, []string{"username", "id"}, def.Names())
			return nil
		})

	assert.NoError(t, repo.Update(context.Background(), user))
}

func TestGenericRepository_UpdateKeyOnlyTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewGenericRepository[types.UserEntity](mocks.NewMockQueryExecutor(ctrl), nil, table.Metadata{
		Name:    "user_ids",
		Columns: []string{"id"},
		PartKey: []string{"id"},
	})

	err := repo.Update(context.Background(), &types.UserEntity{ID: "u-1"})
	assert.ErrorIs(t, err, dserrors.ErrInvalidQuery)
}

func TestGenericRepository_Delete(t *testing.T) {
	executor, repo := newUserRepository(t)
	user := &types.UserEntity{ID: "u-1"}

	executor.EXPECT().ExecuteStruct(gomock.Any(), gomock.Any(), user).
		DoAndReturn(func(_ context.Context, def types.QueryDefinition, _ interface{}) error {
			assert.Contains(t, def.Statement(), "DELETE FROM user")
			assert.Equal(t, []string{"id"}, def.Names())
			return nil
		})

	assert.NoError(t, repo.Delete(context.Background(), user))
}

func TestGenericRepository_SelectOneByID(t *testing.T) {
	executor, repo := newUserRepository(t)

	executor.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), "u-1").
		DoAndReturn(func(_ context.Context, def types.QueryDefinition, dest interface{}, _ ...interface{}) error {
			assert.Contains(t, def.Statement(), "SELECT")
			assert.Contains(t, def.Statement(), "FROM user")
			*dest.(*types.UserEntity) = types.UserEntity{ID: "u-1", Username: "alice"}
			return nil
		})

	user, err := repo.SelectOneByID(context.Background(), "u-1")

	require.NoError(t, err)
	assert.Equal(t, &types.UserEntity{ID: "u-1", Username: "alice"}, user)
}

func TestGenericRepository_SelectOneByIDNotFound(t *testing.T) {
	executor, repo := newUserRepository(t)
	executor.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), "missing").Return(dserrors.ErrRecordNotFound)

	user, err := repo.SelectOneByID(context.Background(), "missing")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, dserrors.ErrRecordNotFound)
}

func TestGenericRepository_WrongKeyArity(t *testing.T) {
	_, repo := newUserRepository(t)

	_, err := repo.SelectOneByID(context.Background())
	assert.ErrorIs(t, err, dserrors.ErrInvalidQuery)

	_, err = repo.Exists(context.Background(), "a", "b")
	assert.ErrorIs(t, err, dserrors.ErrInvalidQuery)
}

func TestGenericRepository_List(t *testing.T) {
	executor, repo := newUserRepository(t)
	rows := []types.UserEntity{{ID: "u-1", Username: "alice"}, {ID: "u-2", Username: "bob"}}

	executor.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, def types.QueryDefinition, dest interface{}, _ ...interface{}) error {
			assert.Contains(t, def.Statement(), "SELECT id,username FROM user")
			*dest.(*[]types.UserEntity) = rows
			return nil
		})

	users, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, rows, users)
}

func TestGenericRepository_Count(t *testing.T) {
	executor, repo := newUserRepository(t)

	executor.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, def types.QueryDefinition, dest interface{}, _ ...interface{}) error {
			assert.Contains(t, strings.ToLower(def.Statement()), "count(*)")
			*dest.(*int64) = 42
			return nil
		})

	count, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestGenericRepository_Exists(t *testing.T) {
	executor, repo := newUserRepository(t)

	gomock.InOrder(
		executor.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), "u-1").
			DoAndReturn(func(_ context.Context, _ types.QueryDefinition, dest interface{}, _ ...interface{}) error {
				*dest.(*int64) = 1
				return nil
			}),
		executor.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), "u-2").Return(nil),
	)

	exists, err := repo.Exists(context.Background(), "u-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(context.Background(), "u-2")
	require.NoError(t, err)
	assert.False(t, exists)
}
