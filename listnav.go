package ask

import (
	"maps"
	"slices"
)

// listNavigator is the selection cursor shared by the select-style
// widgets. The index wraps on both ends so every option is reachable
// regardless of list layout; page jumps wrap the same way. The toggle
// set is only used by multi-select.
type listNavigator struct {
	length  int
	index   int
	toggled map[int]struct{}
}

func newListNavigator(length int) listNavigator {
	return listNavigator{length: length}
}

// moveBy shifts the index by delta with wrap-around. Safe for any delta,
// including page-sized jumps and negative values.
func (n *listNavigator) moveBy(delta int) {
	if n.length == 0 {
		return
	}
	n.index = ((n.index+delta)%n.length + n.length) % n.length
}

func (n *listNavigator) moveUp()   { n.moveBy(-1) }
func (n *listNavigator) moveDown() { n.moveBy(1) }

// toggle flips membership of index i in the toggle set.
func (n *listNavigator) toggle(i int) {
	if n.toggled == nil {
		n.toggled = make(map[int]struct{})
	}
	if _, ok := n.toggled[i]; ok {
		delete(n.toggled, i)
	} else {
		n.toggled[i] = struct{}{}
	}
}

func (n *listNavigator) isToggled(i int) bool {
	_, ok := n.toggled[i]
	return ok
}

func (n *listNavigator) toggledCount() int {
	return len(n.toggled)
}

// toggledIndexes returns the toggle set in ascending option order.
func (n *listNavigator) toggledIndexes() []int {
	return slices.Sorted(maps.Keys(n.toggled))
}
