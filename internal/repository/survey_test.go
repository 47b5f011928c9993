package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSurvey(t *testing.T) {
	setupTestDB(t)

	_, err := Register("alice", "pass1234", false)
	require.NoError(t, err)

	id, err := CreateSurvey("Coffee Poll", "Morning habits", "alice")
	require.NoError(t, err)

	survey, err := GetSurvey(id)
	require.NoError(t, err)
	assert.Equal(t, "Coffee Poll", survey.Title)
	assert.Equal(t, "Morning habits", survey.Description)
	assert.True(t, survey.IsActive) // active by default
	assert.False(t, survey.CreatedAt.IsZero())
}

func TestCreateSurvey_UnknownCreator(t *testing.T) {
	setupTestDB(t)

	_, err := CreateSurvey("Ghost Poll", "", "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetSurvey_NotFound(t *testing.T) {
	setupTestDB(t)

	_, err := GetSurvey(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleSurveyStatus(t *testing.T) {
	setupTestDB(t)

	_, err := Register("alice", "pass1234", false)
	require.NoError(t, err)
	id, err := CreateSurvey("Coffee Poll", "", "alice")
	require.NoError(t, err)

	status, err := ToggleSurveyStatus(id)
	require.NoError(t, err)
	assert.False(t, status)

	// Double-toggle returns the survey to its original status.
	status, err = ToggleSurveyStatus(id)
	require.NoError(t, err)
	assert.True(t, status)

	survey, err := GetSurvey(id)
	require.NoError(t, err)
	assert.True(t, survey.IsActive)
}

func TestToggleSurveyStatus_NotFound(t *testing.T) {
	setupTestDB(t)

	_, err := ToggleSurveyStatus(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSurveys_ActiveOnly(t *testing.T) {
	setupTestDB(t)

	_, err := Register("alice", "pass1234", false)
	require.NoError(t, err)

	keepID, err := CreateSurvey("Stays active", "", "alice")
	require.NoError(t, err)
	toggleID, err := CreateSurvey("Gets disabled", "", "alice")
	require.NoError(t, err)

	_, err = ToggleSurveyStatus(toggleID)
	require.NoError(t, err)

	active, err := ListSurveys(true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, keepID, active[0].ID)

	all, err := ListSurveys(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Toggling back makes it visible again.
	_, err = ToggleSurveyStatus(toggleID)
	require.NoError(t, err)

	active, err = ListSurveys(true)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestListSurveysByCreator(t *testing.T) {
	setupTestDB(t)

	_, err := Register("alice", "pass1234", false)
	require.NoError(t, err)
	_, err = Register("bob", "pass1234", false)
	require.NoError(t, err)

	_, err = CreateSurvey("Alice One", "", "alice")
	require.NoError(t, err)
	_, err = CreateSurvey("Alice Two", "", "alice")
	require.NoError(t, err)
	_, err = CreateSurvey("Bob One", "", "bob")
	require.NoError(t, err)

	surveys, err := ListSurveysByCreator("alice")
	require.NoError(t, err)
	assert.Len(t, surveys, 2)

	surveys, err = ListSurveysByCreator("nobody")
	require.NoError(t, err)
	assert.Empty(t, surveys)
}
