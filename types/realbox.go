package types

import "fmt"

// RealBox is the physical extent of a domain, low and high corners per axis.
type RealBox struct {
	Lo, Hi []float64
}

func NewRealBox(lo, hi []float64) (rb RealBox) {
	rb.Lo = append([]float64(nil), lo...)
	rb.Hi = append([]float64(nil), hi...)
	return
}

func (rb RealBox) Dim() int { return len(rb.Lo) }

func (rb RealBox) Length(dir int) float64 { return rb.Hi[dir] - rb.Lo[dir] }

func (rb RealBox) Copy() RealBox { return NewRealBox(rb.Lo, rb.Hi) }

// Append returns a new RealBox with an extra axis spanning [lo, hi].
func (rb RealBox) Append(lo, hi float64) RealBox {
	return RealBox{
		Lo: append(append([]float64(nil), rb.Lo...), lo),
		Hi: append(append([]float64(nil), rb.Hi...), hi),
	}
}

func (rb RealBox) String() string {
	return fmt.Sprintf("(%v %v)", rb.Lo, rb.Hi)
}
