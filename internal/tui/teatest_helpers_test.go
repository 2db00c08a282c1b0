package tui

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/taskman/internal/config"
	"github.com/thenoetrevino/taskman/internal/models"
	"github.com/thenoetrevino/taskman/internal/testutil"
)

// cmdTimeout bounds commands run by tests; form cursor ticks never finish in time
const cmdTimeout = 200 * time.Millisecond

func seededTask(id, title string) models.Task {
	t := models.NewDraft()
	t.ID = id
	t.Title = title
	return t
}

// setupTestModel creates a sized model over a fake API and runs the initial load
func setupTestModel(t *testing.T, tasks ...models.Task) (Model, *testutil.FakeTaskAPI) {
	t.Helper()
	api := testutil.NewFakeTaskAPI(tasks...)
	m := InitialModel(context.Background(), api, config.Default())

	m = UpdateModelWithMessage(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = settle(t, m, m.Init())
	return m, api
}

// UpdateModelWithMessage updates the model with a message and returns the updated model
func UpdateModelWithMessage(m Model, msg tea.Msg) Model {
	updatedModel, _ := m.Update(msg)
	return updatedModel.(Model)
}

// press sends one key and settles every API command it triggers
func press(t *testing.T, m Model, k tea.KeyPressMsg) Model {
	t.Helper()
	updated, cmd := m.Update(k)
	return settle(t, updated.(Model), cmd)
}

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Text: string(r), Code: r})
}

func keyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

func keyCtrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: r, Mod: tea.ModCtrl})
}

// settle runs cmd and feeds API completions back until nothing is left
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		msg, ok := runCmd(next)
		if !ok {
			continue
		}

		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tasksLoadedMsg, taskSavedMsg, taskRemovedMsg:
			updated, follow := m.Update(msg)
			m = updated.(Model)
			queue = append(queue, follow)
		}
	}
	return m
}

// runCmd executes cmd, giving up on commands that block
func runCmd(cmd tea.Cmd) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}
