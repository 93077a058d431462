package datastore

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trigg3rX/triggerx-cql/pkg/datastore/infrastructure/connection"
	"github.com/trigg3rX/triggerx-cql/pkg/datastore/mocks"
	"github.com/trigg3rX/triggerx-cql/pkg/logging"
	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

func TestNewService_Validation(t *testing.T) {
	svc, err := NewService(nil, logging.NewNoOpLogger(), nil)
	assert.Nil(t, svc)
	assert.EqualError(t, err, "config cannot be nil")

	svc, err = NewService(connection.NewConfig("localhost", "9042"), nil, nil)
	assert.Nil(t, svc)
	assert.EqualError(t, err, "logger cannot be nil")

	svc, err = NewService(&connection.Config{}, logging.NewNoOpLogger(), nil)
	assert.Nil(t, svc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestService_PreparesThroughSharedCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockConnection(ctrl)
	session := mocks.NewMockSessioner(ctrl)
	conn.EXPECT().GetSession().Return(session).AnyTimes()

	const stmt = "SELECT id, username FROM user WHERE id = ?"
	session.EXPECT().Prepare(gomock.Any(), stmt).
		Return(types.NewPreparedHandle(stmt, "app", nil, true), nil).
		Times(1)

	reg := prometheus.NewRegistry()
	svc := newService(conn, connection.NewConfig("localhost", "9042"), logging.NewNoOpLogger(), reg)

	for i := 0; i < 3; i++ {
		_, err := svc.Template().Prepare(context.Background(), types.NewQueryDefinition(stmt))
		require.NoError(t, err)
	}

	assert.Equal(t, 1, svc.Cache().Len())
	assert.Equal(t, "user", svc.Users().TableName())
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "triggerx_prepared_statement_cache_hits_total"))
}

func TestService_HealthCheckAndClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conn := mocks.NewMockConnection(ctrl)
	checkErr := errors.New("no hosts available")
	conn.EXPECT().HealthCheck(gomock.Any()).Return(checkErr)
	conn.EXPECT().Close()

	svc := newService(conn, connection.NewConfig("localhost", "9042"), logging.NewNoOpLogger(), nil)

	assert.Equal(t, checkErr, svc.HealthCheck(context.Background()))
	svc.Close()
}
