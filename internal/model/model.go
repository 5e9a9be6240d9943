// Package model implements attribute-bound configuration models. A model is
// populated from a generic structure (maps, sequences, scalars) produced by
// one of the descriptor frontends, one registered setter per attribute, and
// later hands back a deferred action which mutates the host configuration
// object when invoked.
package model

import (
	"sort"

	"github.com/srevinsaju/machina/internal/diag"
)

// Structure is the generic nested input a model is populated from. Keys are
// attribute names; values are opaque to this layer and may themselves be
// mappings, sequences or scalars.
type Structure map[string]any

// Setter assigns a single attribute value. Type checking and coercion happen
// here, in the model that registered the setter, never in Populate.
type Setter func(value any) diag.Diagnostics

// Setters is the explicit registry of settable attributes for one model
// type. A key missing from this registry is the unknown-attribute condition.
type Setters map[string]Setter

// Action is a deferred mutation of the host configuration object. The target
// is opaque to this layer; it is passed through untouched, and whatever the
// action reports propagates unchanged to the caller.
type Action func(target any) diag.Diagnostics

type Model interface {
	// Type is the user-facing name of the model, used in diagnostics
	Type() string
	// Setters declares the attributes this model accepts
	Setters() Setters
	// Action derives the deferred action from the populated model
	Action() (Action, diag.Diagnostics)
}

// Base is embedded by concrete models. It supplies the Action stub so that a
// model type which forgot to declare its own deferred action fails loudly
// instead of silently applying nothing.
type Base struct{}

func (b Base) Action() (Action, diag.Diagnostics) {
	// the concrete type is not known here; Apply stamps it in
	var diags diag.Diagnostics
	return nil, diags.Append(diag.NewNotImplementedError(""))
}

// Populate assigns every key of the structure through the model's setter
// registry. All keys are resolved against the registry before any setter
// runs, so a structure containing an unknown attribute never leaves a
// half-populated model behind. Keys are visited in sorted order; setters are
// independent of each other, so the iteration order is unobservable in the
// final state.
func Populate(m Model, structure Structure) diag.Diagnostics {
	var diags diag.Diagnostics
	setters := m.Setters()

	keys := make([]string, 0, len(structure))
	for k := range structure {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, ok := setters[k]; !ok {
			diags = diags.Append(diag.NewUnknownAttributeError(k, m.Type()))
		}
	}
	if diags.HasErrors() {
		return diags
	}

	for _, k := range keys {
		d := setters[k](structure[k])
		for i := range d {
			if d[i].Source == "" {
				d[i].Source = m.Type() + "." + k
			}
		}
		diags = diags.Extend(d)
	}
	return diags
}

// New populates a fresh model instance from the structure. On failure the
// zero value is returned together with the diagnostics; a partially
// populated instance is never exposed.
func New[M Model](m M, structure Structure) (M, diag.Diagnostics) {
	if diags := Populate(m, structure); diags.HasErrors() {
		var zero M
		return zero, diags
	}
	return m, nil
}

// Derive asks the model for its deferred action, stamping the model type
// into any diagnostic the model left without a source.
func Derive(m Model) (Action, diag.Diagnostics) {
	action, diags := m.Action()
	for i := range diags {
		if diags[i].Source == "" {
			diags[i].Source = m.Type()
		}
	}
	return action, diags
}

// Apply derives the model's deferred action and immediately invokes it with
// the target. Equivalent to calling Action followed by the action itself.
func Apply(m Model, target any) diag.Diagnostics {
	action, diags := Derive(m)
	if diags.HasErrors() {
		return diags
	}
	return diags.Extend(action(target))
}

// Sequence folds the deferred actions of nested models into a single action
// invoked in order against the same target. The first failing action stops
// the sequence.
func Sequence(actions ...Action) Action {
	return func(target any) diag.Diagnostics {
		var diags diag.Diagnostics
		for _, action := range actions {
			diags = diags.Extend(action(target))
			if diags.HasErrors() {
				return diags
			}
		}
		return diags
	}
}
