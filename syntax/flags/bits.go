// Package flags holds the bitset vocabularies that annotate shell syntax
// nodes. Bit positions match bash's command.h and are part of the
// contract: do not renumber them.
package flags

import (
	"fmt"
	"strings"

	"github.com/siadat/bashast/erroring"
)

type bits interface {
	~uint8 | ~uint16 | ~uint32
}

type named[T bits] struct {
	flag T
	name string
}

func mask[T bits](names []named[T]) T {
	var m T
	for _, n := range names {
		m |= n.flag
	}
	return m
}

// format renders v as "A|B|C" in declaration order. Bits without a name
// are appended in hex, which only happens for values built by conversion.
func format[T bits](v T, names []named[T]) string {
	if v == 0 {
		return "0"
	}
	var parts []string
	var rest = v
	for _, n := range names {
		if v&n.flag == n.flag {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint64(rest)))
	}
	return strings.Join(parts, "|")
}

func parse[T bits](table string, s string, names []named[T]) (T, error) {
	var v T
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return 0, nil
	}
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		var found = false
		for _, n := range names {
			if n.name == part {
				v |= n.flag
				found = true
				break
			}
		}
		if !found {
			return 0, erroring.VocabularyError{Table: table, Raw: part}
		}
	}
	return v, nil
}

func fromUint[T bits](table string, raw uint64, names []named[T]) (T, error) {
	if raw&^uint64(mask(names)) != 0 {
		return 0, erroring.VocabularyError{Table: table, Raw: raw}
	}
	return T(raw), nil
}
