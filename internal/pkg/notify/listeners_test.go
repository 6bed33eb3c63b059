package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListeners_NotifyInOrder(t *testing.T) {
	var l Listeners[int]
	var got []string

	l.Add(func(v int) { got = append(got, "first") })
	l.Add(nil)
	l.Add(func(v int) { got = append(got, "second") })

	l.Notify(1)

	assert.Equal(t, []string{"first", "second"}, got)
	assert.Equal(t, 2, l.Len())
}

func TestListeners_AddDuringNotify(t *testing.T) {
	var l Listeners[string]
	calls := 0

	l.Add(func(string) {
		calls++
		l.Add(func(string) { calls += 10 })
	})

	l.Notify("a")
	assert.Equal(t, 1, calls)

	l.Notify("b")
	assert.Equal(t, 12, calls)
}

func TestListeners_ZeroValueNotify(t *testing.T) {
	var l Listeners[struct{}]
	assert.NotPanics(t, func() { l.Notify(struct{}{}) })
	assert.Zero(t, l.Len())
}
