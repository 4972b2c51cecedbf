// Copyright (c) 2026 Creata. All rights reserved.

package client

import "sync"

// # Constants

const (
	// DefaultTab is the tab selected on a fresh session and after the
	// active work tab is closed.
	DefaultTab = "trending"

	// MaxOpenedWorks caps the opened-works strip.
	MaxOpenedWorks = 8

	workTabPrefix = "work-"
)

// OpenedWork is one entry in the sidebar's opened-works strip.
type OpenedWork struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// # Store

// SidebarStore tracks navigation state: the active tab, the strip of
// recently opened works, and the collapsed flag.
type SidebarStore struct {
	mu sync.Mutex

	activeTab   string
	openedWorks []OpenedWork
	collapsed   bool
}

// NewSidebarStore constructs a sidebar on the default tab.
func NewSidebarStore() *SidebarStore {
	return &SidebarStore{activeTab: DefaultTab}
}

// # Actions

// SelectTab activates a navigation tab.
func (store *SidebarStore) SelectTab(tab string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.activeTab = tab
}

// OpenWork puts a work on the opened strip and activates its tab.
//
// A work already on the strip is re-selected in place; its position and
// the rest of the strip do not move. New entries land at the head, and
// the strip is trimmed to [MaxOpenedWorks] from the tail.
func (store *SidebarStore) OpenWork(id, title string) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.activeTab = workTabPrefix + id

	for index, opened := range store.openedWorks {
		if opened.ID == id {
			store.openedWorks[index].Title = title
			return
		}
	}

	store.openedWorks = append([]OpenedWork{{ID: id, Title: title}}, store.openedWorks...)
	if len(store.openedWorks) > MaxOpenedWorks {
		store.openedWorks = store.openedWorks[:MaxOpenedWorks]
	}
}

// CloseWork removes a work from the strip. Closing the active work's
// tab falls back to the default tab.
func (store *SidebarStore) CloseWork(id string) {
	store.mu.Lock()
	defer store.mu.Unlock()

	kept := store.openedWorks[:0]
	for _, opened := range store.openedWorks {
		if opened.ID != id {
			kept = append(kept, opened)
		}
	}
	store.openedWorks = kept

	if store.activeTab == workTabPrefix+id {
		store.activeTab = DefaultTab
	}
}

// SetCollapsed sets the collapsed flag.
func (store *SidebarStore) SetCollapsed(collapsed bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.collapsed = collapsed
}

// ToggleCollapsed flips the collapsed flag and returns the new value.
func (store *SidebarStore) ToggleCollapsed() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.collapsed = !store.collapsed
	return store.collapsed
}

// Clear resets the sidebar to its initial state.
func (store *SidebarStore) Clear() {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.activeTab = DefaultTab
	store.openedWorks = nil
	store.collapsed = false
}

// # Snapshots

// ActiveTab returns the currently selected tab key.
func (store *SidebarStore) ActiveTab() string {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.activeTab
}

// OpenedWorks returns a copy of the opened strip, most recent first.
func (store *SidebarStore) OpenedWorks() []OpenedWork {
	store.mu.Lock()
	defer store.mu.Unlock()
	return append([]OpenedWork(nil), store.openedWorks...)
}

// Collapsed reports whether the sidebar is collapsed.
func (store *SidebarStore) Collapsed() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.collapsed
}
