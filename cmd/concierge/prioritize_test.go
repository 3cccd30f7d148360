package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeadmin/concierge/core"
)

func TestParseTask(t *testing.T) {
	task, err := parseTask("Renew car insurance:true:true")
	require.NoError(t, err)
	assert.Equal(t, core.Task{Description: "Renew car insurance", Urgent: true, Important: true}, task)

	task, err = parseTask("Sort photos")
	require.NoError(t, err)
	assert.Equal(t, core.Task{Description: "Sort photos"}, task)

	task, err = parseTask("Plan savings:false:true")
	require.NoError(t, err)
	assert.False(t, task.Urgent)
	assert.True(t, task.Important)
}

func TestParseTaskErrors(t *testing.T) {
	_, err := parseTask(":true:true")
	assert.Error(t, err)

	_, err = parseTask("Too:many:parts:here")
	assert.Error(t, err)

	_, err = parseTask("Task:maybe")
	assert.Error(t, err)
}
