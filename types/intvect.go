package types

import (
	"strconv"
	"strings"
)

// IntVect is an integer index vector, one entry per spatial axis.
type IntVect []int

func NewIntVect(vals ...int) IntVect {
	iv := make(IntVect, len(vals))
	copy(iv, vals)
	return iv
}

// UniformIntVect returns a vector of dimension dim with every entry set to val.
func UniformIntVect(dim, val int) (iv IntVect) {
	iv = make(IntVect, dim)
	for i := range iv {
		iv[i] = val
	}
	return
}

func (iv IntVect) Dim() int { return len(iv) }

func (iv IntVect) Copy() IntVect {
	if iv == nil {
		return nil
	}
	return NewIntVect(iv...)
}

func (iv IntVect) Equal(other IntVect) bool {
	if len(iv) != len(other) {
		return false
	}
	for i := range iv {
		if iv[i] != other[i] {
			return false
		}
	}
	return true
}

// Append returns a new vector with val added as the last axis.
func (iv IntVect) Append(val int) IntVect {
	out := make(IntVect, len(iv)+1)
	copy(out, iv)
	out[len(iv)] = val
	return out
}

func (iv IntVect) Product() (p int) {
	p = 1
	for _, v := range iv {
		p *= v
	}
	return
}

func (iv IntVect) String() string {
	parts := make([]string, len(iv))
	for i, v := range iv {
		parts[i] = strconv.Itoa(v)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
