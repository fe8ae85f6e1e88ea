package ecc

import (
	"encoding/binary"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Group is a comb table for multiplying a set of fixed segment bases by
// scalars of up to Segments·SegmentBits bits. It is immutable once built.
type Group struct {
	personal    []byte
	segments    int
	segmentBits int
	windowBits  int
	windows     int

	bases []Point
	// table[segment][window][value] = base·(value << window·windowBits)
	table [][][]Point
}

func NewGroup(personal []byte, segments, segmentBits, windowBits int) (*Group, error) {
	if segments <= 0 || segmentBits <= 0 || windowBits <= 0 || windowBits > 16 {
		return nil, errors.Errorf("ecc: invalid group shape %d/%d/%d", segments, segmentBits, windowBits)
	}
	g := &Group{
		personal:    append([]byte{}, personal...),
		segments:    segments,
		segmentBits: segmentBits,
		windowBits:  windowBits,
		windows:     (segmentBits + windowBits - 1) / windowBits,
		bases:       make([]Point, segments),
		table:       make([][][]Point, segments),
	}

	start := time.Now()
	var eg errgroup.Group
	for i := 0; i < segments; i++ {
		i := i
		eg.Go(func() error {
			return g.buildSegment(i)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, errors.Wrapf(err, "ecc: group %q", personal)
	}
	logger.Debugw("group table built", "personal", string(personal), "segments", segments,
		"bits", segmentBits, "window", windowBits, "elapsed", time.Since(start))
	return g, nil
}

func (g *Group) buildSegment(i int) error {
	var index [32]byte
	binary.LittleEndian.PutUint64(index[:], uint64(i))
	base, err := FindPointB(g.personal, index[:])
	if err != nil {
		return err
	}
	g.bases[i] = base

	n := 1 << g.windowBits
	windows := make([][]Point, g.windows)
	for j := range windows {
		row := make([]Point, n)
		for k := 0; k < n; k++ {
			var p Point
			switch {
			case j > 0:
				p = windows[j-1][k]
				for w := 0; w < g.windowBits; w++ {
					p = p.Twice()
				}
			case k == 0:
				p = Zero()
			default:
				p = row[k-1].Add(base)
			}
			if a, err := p.Affine(); err == nil {
				p = a
			}
			row[k] = p
		}
		windows[j] = row
	}
	g.table[i] = windows
	return nil
}

// Base returns the generator of segment i.
func (g *Group) Base(i int) Point {
	return g.bases[i]
}

func (g *Group) Capacity() int {
	return g.segments * g.segmentBits
}

// Mult multiplies the table by the 256 bit little endian encoding of s.
func (g *Group) Mult(s FR) Point {
	b := s.Bytes()
	p, err := g.MultBits(NewBitBuffer(b[:], 0, 256))
	if err != nil {
		logger.Panicf("group %q: %v", g.personal, err)
	}
	return p
}

// MultBits returns Σ base_i·segment_i where segment_i is the i-th run of
// SegmentBits bits of b.
func (g *Group) MultBits(b BitBuffer) (Point, error) {
	if b.Len() > g.Capacity() {
		return Point{}, ErrBitsOverflow
	}
	segments := (b.Len() + g.segmentBits - 1) / g.segmentBits
	acc := Zero()
	for i := 0; i < segments; i++ {
		seg := b.Slice(i*g.segmentBits, g.segmentBits)
		for j := 0; j < g.windows; j++ {
			v := seg.Slice(j*g.windowBits, g.windowBits).Uint()
			acc = acc.Add(g.table[i][j][v])
		}
	}
	return acc, nil
}
