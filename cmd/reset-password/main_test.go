package main

import (
	"testing"

	"go-glassfloor-ws/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupResetDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Permission{}))
	return db
}

func TestResetPasswordRotatesTokenVersion(t *testing.T) {
	db := setupResetDB(t)

	user := &model.User{
		Username:     "master",
		UserType:     model.UserTypeMaster,
		IsActive:     true,
		TokenVersion: uuid.New().String(),
	}
	require.NoError(t, user.SetPassword("old-password"))
	require.NoError(t, db.Create(user).Error)
	oldVersion := user.TokenVersion

	require.NoError(t, resetPassword(db, "master", "new-password"))

	var reloaded model.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)

	assert.True(t, reloaded.CheckPassword("new-password"))
	assert.False(t, reloaded.CheckPassword("old-password"))

	// The version must be a fresh UUID so equality checks against tokens
	// issued before the reset fail.
	assert.NotEqual(t, oldVersion, reloaded.TokenVersion)
	_, err := uuid.Parse(reloaded.TokenVersion)
	assert.NoError(t, err)
}

func TestResetPasswordUnknownUser(t *testing.T) {
	db := setupResetDB(t)

	err := resetPassword(db, "ghost", "whatever")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
