// Package pbencoder encodes solutions in protobuf wire format for the
// solution cache. The message is hand-assembled with protowire:
//
//	message Solution {
//	  bool found = 1;
//	  repeated Coord path = 2;  // Coord { uint64 row = 1; uint64 col = 2; }
//	  int64 solved_at_unix_nano = 3;
//	}
package pbencoder

import (
	"errors"
	"fmt"
	"math"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	fieldFound    protowire.Number = 1
	fieldPath     protowire.Number = 2
	fieldSolvedAt protowire.Number = 3

	fieldRow protowire.Number = 1
	fieldCol protowire.Number = 2
)

var (
	ErrNilSolution  = errors.New("nil solution")
	ErrBadFieldType = errors.New("unexpected wire type")
	ErrBadCoord     = errors.New("coordinate out of range")
)

var _ i.SolutionEncoder = &Protobuf{}

type Protobuf struct{}

// Marshal implements i.SolutionEncoder.
func (p *Protobuf) Marshal(s *dmn.Solution) ([]byte, error) {
	if s == nil {
		return nil, ErrNilSolution
	}

	var b []byte
	if s.Found {
		b = protowire.AppendTag(b, fieldFound, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	for _, c := range s.Path {
		if c.Row() < 0 || c.Col() < 0 {
			return nil, fmt.Errorf("%w: %s", ErrBadCoord, c)
		}
		b = protowire.AppendTag(b, fieldPath, protowire.BytesType)
		b = protowire.AppendBytes(b, marshalCoord(c))
	}
	if !s.SolvedAt.IsZero() {
		b = protowire.AppendTag(b, fieldSolvedAt, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(s.SolvedAt.UnixNano()))
	}
	return b, nil
}

// Unmarshal implements i.SolutionEncoder.
func (p *Protobuf) Unmarshal(b []byte) (*dmn.Solution, error) {
	s := &dmn.Solution{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]

		switch num {
		case fieldFound:
			v, err := consumeVarint(&b, typ)
			if err != nil {
				return nil, err
			}
			s.Found = protowire.DecodeBool(v)
		case fieldPath:
			if typ != protowire.BytesType {
				return nil, fmt.Errorf("%w: field %d", ErrBadFieldType, num)
			}
			raw, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
			c, err := unmarshalCoord(raw)
			if err != nil {
				return nil, err
			}
			s.Path = append(s.Path, c)
		case fieldSolvedAt:
			v, err := consumeVarint(&b, typ)
			if err != nil {
				return nil, err
			}
			s.SolvedAt = time.Unix(0, int64(v)).UTC()
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return s, nil
}

func marshalCoord(c maze.Coord) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldRow, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(c.Row()))
	b = protowire.AppendTag(b, fieldCol, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(c.Col()))
	return b
}

func unmarshalCoord(b []byte) (maze.Coord, error) {
	var row, col uint64
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return maze.Coord{}, protowire.ParseError(n)
		}
		b = b[n:]

		switch num {
		case fieldRow, fieldCol:
			v, err := consumeVarint(&b, typ)
			if err != nil {
				return maze.Coord{}, err
			}
			if v > math.MaxInt32 {
				return maze.Coord{}, fmt.Errorf("%w: %d", ErrBadCoord, v)
			}
			if num == fieldRow {
				row = v
			} else {
				col = v
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return maze.Coord{}, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return maze.NewCoord(int(row), int(col)), nil
}

// consumeVarint reads a varint value from the front of *b.
func consumeVarint(b *[]byte, typ protowire.Type) (uint64, error) {
	if typ != protowire.VarintType {
		return 0, fmt.Errorf("%w: %d", ErrBadFieldType, typ)
	}
	v, n := protowire.ConsumeVarint(*b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*b = (*b)[n:]
	return v, nil
}
