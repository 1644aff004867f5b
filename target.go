package crashcourse

// Action is invoked when a rule matches. The notification holds only the
// matched pair.
type Action func(notification CollisionNotification) error

// Target resolves actions by name. Resolution happens each time a rule
// matches, so an action may be bound after the rule was registered.
type Target interface {
	Role() string
	Action(name string) (Action, bool)
}

// ActionTable is a Target backed by a map of named actions.
type ActionTable struct {
	role    string
	actions map[string]Action
}

var _ Target = (*ActionTable)(nil)

func NewActionTable(role string) *ActionTable {
	return &ActionTable{
		role:    role,
		actions: map[string]Action{},
	}
}

// Bind sets or replaces the action registered under name.
func (t *ActionTable) Bind(name string, action Action) *ActionTable {
	t.actions[name] = action
	return t
}

// BindFunc binds an action that ignores the notification.
func (t *ActionTable) BindFunc(name string, fn func()) *ActionTable {
	return t.Bind(name, func(CollisionNotification) error {
		fn()
		return nil
	})
}

func (t *ActionTable) Unbind(name string) {
	delete(t.actions, name)
}

func (t *ActionTable) Role() string {
	return t.role
}

func (t *ActionTable) Action(name string) (Action, bool) {
	action, ok := t.actions[name]
	return action, ok && action != nil
}

func invoke(target Target, name string, notification CollisionNotification) error {
	if target == nil {
		return &MissingActionError{Role: "<nil>", Action: name}
	}

	action, ok := target.Action(name)
	if !ok {
		return &MissingActionError{Role: target.Role(), Action: name}
	}

	return action(notification)
}
