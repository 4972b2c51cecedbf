// Copyright (c) 2026 Creata. All rights reserved.

package client_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creata-app/creata/internal/client"
)

/*
TestSidebar_OpenWork verifies new tabs land at the head and are
activated.
*/
func TestSidebar_OpenWork(t *testing.T) {
	sidebar := client.NewSidebarStore()

	assert.Equal(t, client.DefaultTab, sidebar.ActiveTab())

	sidebar.OpenWork("w1", "First")
	sidebar.OpenWork("w2", "Second")

	opened := sidebar.OpenedWorks()
	require.Len(t, opened, 2)
	assert.Equal(t, "w2", opened[0].ID)
	assert.Equal(t, "w1", opened[1].ID)
	assert.Equal(t, "work-w2", sidebar.ActiveTab())
}

/*
TestSidebar_ReopenDoesNotReorder verifies re-opening an already opened
work re-selects it in place without moving it to the head.
*/
func TestSidebar_ReopenDoesNotReorder(t *testing.T) {
	sidebar := client.NewSidebarStore()

	sidebar.OpenWork("w1", "First")
	sidebar.OpenWork("w2", "Second")
	sidebar.OpenWork("w3", "Third")

	sidebar.OpenWork("w1", "First Renamed")

	opened := sidebar.OpenedWorks()
	require.Len(t, opened, 3)
	assert.Equal(t, []string{"w3", "w2", "w1"}, []string{opened[0].ID, opened[1].ID, opened[2].ID})
	assert.Equal(t, "First Renamed", opened[2].Title)
	assert.Equal(t, "work-w1", sidebar.ActiveTab())
}

/*
TestSidebar_MaxOpened verifies the strip is capped and the oldest entry
falls off the tail.
*/
func TestSidebar_MaxOpened(t *testing.T) {
	sidebar := client.NewSidebarStore()

	for index := 1; index <= client.MaxOpenedWorks+2; index++ {
		sidebar.OpenWork(fmt.Sprintf("w%d", index), fmt.Sprintf("Work %d", index))
	}

	opened := sidebar.OpenedWorks()
	require.Len(t, opened, client.MaxOpenedWorks)
	assert.Equal(t, "w10", opened[0].ID)
	assert.Equal(t, "w3", opened[len(opened)-1].ID)
}

/*
TestSidebar_CloseWork verifies closing the active work's tab resets to
the default tab, while closing a background tab does not.
*/
func TestSidebar_CloseWork(t *testing.T) {
	sidebar := client.NewSidebarStore()

	sidebar.OpenWork("w1", "First")
	sidebar.OpenWork("w2", "Second")

	// w2 is active; closing w1 keeps it.
	sidebar.CloseWork("w1")
	assert.Equal(t, "work-w2", sidebar.ActiveTab())
	assert.Len(t, sidebar.OpenedWorks(), 1)

	// Closing the active work falls back to the default.
	sidebar.CloseWork("w2")
	assert.Equal(t, client.DefaultTab, sidebar.ActiveTab())
	assert.Empty(t, sidebar.OpenedWorks())
}

/*
TestSidebar_Clear verifies the full reset.
*/
func TestSidebar_Clear(t *testing.T) {
	sidebar := client.NewSidebarStore()

	sidebar.OpenWork("w1", "First")
	sidebar.SetCollapsed(true)
	sidebar.SelectTab("favorites")

	sidebar.Clear()

	assert.Equal(t, client.DefaultTab, sidebar.ActiveTab())
	assert.Empty(t, sidebar.OpenedWorks())
	assert.False(t, sidebar.Collapsed())
}

/*
TestSidebar_ToggleCollapsed verifies the flag flips both ways.
*/
func TestSidebar_ToggleCollapsed(t *testing.T) {
	sidebar := client.NewSidebarStore()

	assert.True(t, sidebar.ToggleCollapsed())
	assert.False(t, sidebar.ToggleCollapsed())
}
