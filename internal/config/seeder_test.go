package config

import (
	"encoding/json"
	"testing"

	"domainfolio/internal/adapters/persistence/models"
	"domainfolio/internal/core/domain"
	"domainfolio/internal/pkg/password"
	"domainfolio/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeder_Run(t *testing.T) {
	db := testutil.NewDB(t)
	seeder := NewSeeder(db, AdminConfig{Username: "admin", Email: "admin@localhost", Password: "admin123"})

	require.NoError(t, seeder.Run())
	require.NoError(t, seeder.Run())

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
	assert.True(t, password.Verify("admin123", users[0].Password))

	var setting models.Setting
	require.NoError(t, db.Where("setting_key = ?", models.SettingKeyCustomLists).First(&setting).Error)

	var lists domain.CustomLists
	require.NoError(t, json.Unmarshal(setting.Value, &lists))
	assert.Equal(t, domain.DefaultCustomLists(), lists)
}

func TestSeeder_KeepsSavedLists(t *testing.T) {
	db := testutil.NewDB(t)

	require.NoError(t, db.Create(&models.Setting{
		Key:   models.SettingKeyCustomLists,
		Value: []byte(`{"registrars":["Gandi"],"categories":[],"evaluationTools":[]}`),
	}).Error)

	require.NoError(t, NewSeeder(db, AdminConfig{Username: "admin"}).Run())

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)

	var setting models.Setting
	require.NoError(t, db.First(&setting).Error)
	assert.JSONEq(t, `{"registrars":["Gandi"],"categories":[],"evaluationTools":[]}`, string(setting.Value))
}
