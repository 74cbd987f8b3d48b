package input

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrDuplicateAction reports an action name already registered for
	// the user.
	ErrDuplicateAction = errors.New("duplicate action")

	// ErrActionIndexOutOfBounds reports an action index that does not
	// exist for the user. On the frame path this indicates a stale
	// binding, logged and skipped, never fatal.
	ErrActionIndexOutOfBounds = errors.New("action index out of bounds")

	// ErrUserIndexOutOfBounds reports a user index never allocated by
	// AddUser.
	ErrUserIndexOutOfBounds = errors.New("user index out of bounds")
)

// Action is one named, per-user input value with its ordered binding
// alternatives. Its value is mutated once per frame by the resolver
// and only read by scenes.
type Action struct {
	Name     string
	Commands []Command
	Value    Value
}

// user is an independent action namespace.
type user struct {
	actions []Action
	names   map[string]int
}

// Entry is one flattened (user, action, bindings) triple the resolver
// iterates once per frame without nested per-user traversal.
type Entry struct {
	User     int
	Action   int
	Shape    Shape
	Commands []Command
}

// Map holds every user's actions plus the flattened binding list.
// Registration happens during initialization; the flattened list is
// appended to by AddAction, never rebuilt during resolution.
type Map struct {
	mu      sync.RWMutex
	users   []*user
	entries []Entry
}

// NewMap creates an empty binding map.
func NewMap() *Map {
	return &Map{}
}

// AddUser allocates a new action namespace and returns its index.
// Indices are never reused while the map lives.
func (m *Map) AddUser() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, &user{names: make(map[string]int)})
	return len(m.users) - 1
}

// AddAction registers a named action for a user with its ordered
// binding alternatives and declared shape. The initial value is the
// shape's neutral value.
func (m *Map) AddAction(userIndex int, name string, commands []Command, shape Shape) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if userIndex < 0 || userIndex >= len(m.users) {
		return fmt.Errorf("%w: %d", ErrUserIndexOutOfBounds, userIndex)
	}
	u := m.users[userIndex]
	if _, exists := u.names[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateAction, name)
	}

	actionIndex := len(u.actions)
	u.names[name] = actionIndex
	u.actions = append(u.actions, Action{
		Name:     name,
		Commands: commands,
		Value:    Neutral(shape),
	})
	m.entries = append(m.entries, Entry{
		User:     userIndex,
		Action:   actionIndex,
		Shape:    shape,
		Commands: commands,
	})
	return nil
}

// UpdateAction stores a resolved value. This is the only way action
// values change; only the resolver calls it.
func (m *Map) UpdateAction(userIndex, actionIndex int, v Value) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if userIndex < 0 || userIndex >= len(m.users) {
		return fmt.Errorf("%w: user %d", ErrUserIndexOutOfBounds, userIndex)
	}
	u := m.users[userIndex]
	if actionIndex < 0 || actionIndex >= len(u.actions) {
		return fmt.Errorf("%w: %d", ErrActionIndexOutOfBounds, actionIndex)
	}
	u.actions[actionIndex].Value = v
	return nil
}

// ActionIndex looks up an action's stable index by name. Scenes call
// this during initialization and keep the index for frame reads.
func (m *Map) ActionIndex(userIndex int, name string) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if userIndex < 0 || userIndex >= len(m.users) {
		return 0, false
	}
	i, ok := m.users[userIndex].names[name]
	return i, ok
}

// ActionValue reads the most recently resolved value.
func (m *Map) ActionValue(userIndex, actionIndex int) (Value, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if userIndex < 0 || userIndex >= len(m.users) {
		return Value{}, fmt.Errorf("%w: user %d", ErrUserIndexOutOfBounds, userIndex)
	}
	u := m.users[userIndex]
	if actionIndex < 0 || actionIndex >= len(u.actions) {
		return Value{}, fmt.Errorf("%w: %d", ErrActionIndexOutOfBounds, actionIndex)
	}
	return u.actions[actionIndex].Value, nil
}

// Users returns the number of allocated users.
func (m *Map) Users() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

// Entries returns the flattened binding list. The slice is shared with
// the map; callers only iterate it between registrations.
func (m *Map) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries
}
