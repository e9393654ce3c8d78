// Package router keeps the navigation stack. The category menu sits at the
// root; a quiz is pushed above it and replaced by its results when the
// session completes.
package router

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/snakequiz/internal/screen"
)

// PushMsg asks the router to open a screen above the active one.
type PushMsg struct {
	Screen screen.Screen
}

// ReplaceMsg asks the router to swap the active screen, keeping the depth.
type ReplaceMsg struct {
	Screen screen.Screen
}

// HomeMsg asks the router to unwind to the root screen.
type HomeMsg struct{}

// PushCmd returns a command that opens s.
func PushCmd(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushMsg{Screen: s} }
}

// ReplaceCmd returns a command that swaps the active screen for s.
func ReplaceCmd(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceMsg{Screen: s} }
}

// HomeCmd returns a command that unwinds to the root screen.
func HomeCmd() tea.Cmd {
	return func() tea.Msg { return HomeMsg{} }
}

// Router manages the screen stack. The root is never removed.
type Router struct {
	stack []screen.Screen
}

// New creates a Router with root at the bottom of the stack.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s above the active screen and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Replace swaps the active screen for s and runs its Init. Replacing the
// root makes s the new root.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Home drops every screen above the root and resumes the root.
func (r *Router) Home() tea.Cmd {
	r.stack = r.stack[:1]
	if res, ok := r.stack[0].(screen.Resumer); ok {
		return res.Resume()
	}
	return nil
}

// Active returns the top screen.
func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Breadcrumb joins the titles of the stacked screens, root first.
func (r *Router) Breadcrumb() string {
	titles := make([]string, len(r.stack))
	for i, s := range r.stack {
		titles[i] = s.Title()
	}
	return strings.Join(titles, " › ")
}

// Update applies navigation messages, and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushMsg:
		return r.Push(msg.Screen)
	case ReplaceMsg:
		return r.Replace(msg.Screen)
	case HomeMsg:
		return r.Home()
	}

	updated, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
