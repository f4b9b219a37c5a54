// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package vartype

import (
	"fmt"
)

// Placeholder is rendered for values that were never received or arrived empty.
const Placeholder = "-"

// VarString holds a decoded, display ready field of the fix state.
type VarString = Variable[string]

// Variable is a value that remembers whether it has been assigned.
type Variable[T any] struct {
	value T
	isset bool
}

// Value returns the assigned value or the zero value of T.
func (v *Variable[T]) Value() T {
	return v.value
}

// Set assigns val and marks the Variable as set, even if val is the zero value.
func (v *Variable[T]) Set(val T) {
	v.value = val
	v.isset = true
}

// IsSet reports whether Set has been called.
func (v *Variable[T]) IsSet() bool {
	return v.isset
}

// String returns the formatted value, or Placeholder when the Variable is unset or
// formats to an empty string.
func (v Variable[T]) String() string {
	if !v.isset {
		return Placeholder
	}
	if s := fmt.Sprint(v.value); s != "" {
		return s
	}
	return Placeholder
}
