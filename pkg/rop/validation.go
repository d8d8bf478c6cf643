package rop

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ValidationErrors maps tag names to their messages. Keys keep the order in
// which their tag first appeared in the failure, messages keep their original
// order within a tag. It marshals to a JSON object in that order.
type ValidationErrors = orderedmap.OrderedMap[string, []string]

// TryAsValidationErrors reclassifies a failure whose every tag belongs to
// flag into a ValidationErrors map. It reports false for a success and for a
// failure holding any error outside flag.
func (r Result[T, C]) TryAsValidationErrors(flag C) (*ValidationErrors, bool) {
	if r.IsSuccess() {
		return nil, false
	}
	for _, e := range r.errors {
		if !HasFlag(e.Code, flag) {
			return nil, false
		}
	}
	return GroupMessages(r.errors), true
}

// GroupMessages groups the messages of errs by exact tag, in first-appearance
// order, keyed by the tag's name.
func GroupMessages[C Code](errs []Error[C]) *ValidationErrors {
	var order []C
	groups := make(map[C][]string, len(errs))
	for _, e := range errs {
		if _, seen := groups[e.Code]; !seen {
			order = append(order, e.Code)
		}
		groups[e.Code] = append(groups[e.Code], e.Message)
	}

	out := orderedmap.New[string, []string]()
	for _, code := range order {
		key := code.String()
		if existing, ok := out.Get(key); ok {
			out.Set(key, append(existing, groups[code]...))
			continue
		}
		out.Set(key, groups[code])
	}
	return out
}
