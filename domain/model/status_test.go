package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, RoleViewer, DefaultUserRole())
	assert.Equal(t, UserActive, DefaultUserStatus())
	assert.Equal(t, EventUpcoming, DefaultEventStatus())
	assert.Equal(t, VideoDraft, DefaultVideoStatus())
	assert.Equal(t, ViewValid, DefaultVideoViewStatus())
}

func TestValidRejectsUnknownValues(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, UserRole("superuser").Valid())

	assert.True(t, EventOngoing.Valid())
	assert.False(t, EventStatus("paused").Valid())

	assert.True(t, VideoPublished.Valid())
	assert.False(t, VideoStatus("queued").Valid())
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, EventCancelled.Terminal())
	assert.False(t, EventUpcoming.Terminal())
	assert.False(t, EventCompleted.Terminal())

	assert.True(t, VideoArchived.Terminal())
	assert.False(t, VideoDraft.Terminal())
	assert.False(t, VideoPublished.Terminal())
}
