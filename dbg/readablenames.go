package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Hinge angles and sweep states are passed around as pointers, and raw
// pointer strings are miserable to eyeball in a trace. This memoizes a
// random readable name per pointer. The memo is never pruned, which is fine
// for debugging sessions and nothing else uses it.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in demand order, so they are deliberately
	// nondeterministic: the same name must not be mistaken for the same
	// object across runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
