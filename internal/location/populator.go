package location

import (
	"reflect"

	"github.com/pkg/errors"
)

// ErrCapabilityMismatch is returned when the control handed to the
// populator cannot be manipulated as a grouped option list.
var ErrCapabilityMismatch = errors.New("control does not support grouped options")

// Option is a single selectable entry created by a SelectControl.
type Option interface {
	Value() string
}

// OptionGroup is a labelled cluster of options.
type OptionGroup interface {
	Label() string
	AppendOption(opt Option) error
}

// SelectControl is the option list surface the populator needs from a
// host UI control. Indexes address options in document order, including
// options nested in groups.
type SelectControl interface {
	OptionCount() int
	RemoveOption(index int) error
	CreateGroup(label string) (OptionGroup, error)
	CreateOption(value, text string) (Option, error)
	AppendGroup(group OptionGroup) error
}

// PopulateLocationFilter fills target with the Philippines table. target
// must implement SelectControl.
func PopulateLocationFilter(target any) error {
	ctrl, ok := target.(SelectControl)
	if !ok {
		return errors.Wrapf(ErrCapabilityMismatch, "%T", target)
	}
	return Philippines.Populate(ctrl)
}

// Populate resets ctrl to its first (default) option and appends one group
// per region, each holding one option per city. Running it twice leaves the
// control exactly as running it once.
func (t *Table) Populate(ctrl SelectControl) error {
	if isNilControl(ctrl) {
		return errors.Wrapf(ErrCapabilityMismatch, "nil control %T", ctrl)
	}

	for n := ctrl.OptionCount(); n > 1; n = ctrl.OptionCount() {
		if err := ctrl.RemoveOption(1); err != nil {
			return errors.Wrap(err, "remove stale option")
		}
		if ctrl.OptionCount() >= n {
			return errors.Wrapf(ErrCapabilityMismatch, "removing option 1 left %d options", n)
		}
	}

	for pair := t.regions.Oldest(); pair != nil; pair = pair.Next() {
		group, err := ctrl.CreateGroup(pair.Key)
		if err != nil {
			return errors.Wrapf(err, "create group %q", pair.Key)
		}
		for _, city := range pair.Value {
			opt, err := ctrl.CreateOption(city, city)
			if err != nil {
				return errors.Wrapf(err, "create option %q", city)
			}
			if err := group.AppendOption(opt); err != nil {
				return errors.Wrapf(err, "append option %q to %q", city, pair.Key)
			}
		}
		if err := ctrl.AppendGroup(group); err != nil {
			return errors.Wrapf(err, "append group %q", pair.Key)
		}
	}
	return nil
}

// isNilControl also catches an interface holding a nil pointer.
func isNilControl(ctrl SelectControl) bool {
	if ctrl == nil {
		return true
	}
	v := reflect.ValueOf(ctrl)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
