package locomotion

import "errors"

var ErrDuplicateController = errors.New("locomotion: movement controller already registered")

// Registry holds the one controller that owns a world. The scene that builds
// the world owns the registry and hands it to whoever creates controllers.
type Registry struct {
	owner *Controller
}

// Register claims the slot for c. Registering the current owner again is a
// no-op; any other controller gets ErrDuplicateController and the slot keeps
// its first owner.
func (r *Registry) Register(c *Controller) error {
	if c == nil {
		return errors.New("locomotion: nil controller")
	}
	if r.owner != nil && r.owner != c {
		return ErrDuplicateController
	}
	r.owner = c
	return nil
}

// Current returns the owning controller, if any.
func (r *Registry) Current() (*Controller, bool) {
	return r.owner, r.owner != nil
}

// Release empties the slot if c owns it.
func (r *Registry) Release(c *Controller) {
	if r.owner == c {
		r.owner = nil
	}
}
