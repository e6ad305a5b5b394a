package location

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/errloc/locerrors"
)

// ParsePath builds a location for fn and ref from a dotted field path such
// as "pSubmits[1].pWaitSemaphores[0]", chaining one Dot or DotIndex per
// segment. An empty expression yields the root.
//
// ParsePath is the inverse of the field portion of Message:
//
//	loc, _ := ParsePath(fn, ref, "pImageMemoryBarriers[2].srcAccessMask")
//	loc.Message() // "vkCmdPipelineBarrier(): pImageMemoryBarriers[2].srcAccessMask"
func ParsePath(fn Func, ref RefPage, expr string) (Location, error) {
	loc := New(fn, ref)
	if expr == "" {
		return loc, nil
	}

	p := &pathParser{input: expr}
	for {
		seg, err := p.parseSegment()
		if err != nil {
			return Location{}, err
		}
		loc = loc.DotIndex(seg.Field, seg.Index)

		if p.done() {
			return loc, nil
		}
		if !p.consume('.') {
			return Location{}, p.errorf("unexpected character %q", p.peek())
		}
		if p.done() {
			return Location{}, p.errorf("trailing '.'")
		}
	}
}

// ParseMessage parses the output of Message back into a location. The
// reference page is not part of the rendered text and must be supplied.
func ParseMessage(ref RefPage, msg string) (Location, error) {
	name, rest, ok := strings.Cut(msg, "(): ")
	if !ok {
		name, ok = strings.CutSuffix(msg, "():")
		if !ok {
			return Location{}, &locerrors.ParseError{Input: msg, Offset: -1, Message: `missing "(): " after call name`}
		}
	}
	fn := FuncEmpty
	if name != "" {
		var err error
		if fn, err = ParseFunc(name); err != nil {
			return Location{}, &locerrors.ParseError{Input: msg, Offset: 0, Message: "unknown call", Cause: err}
		}
	}
	loc, err := ParsePath(fn, ref, rest)
	if err != nil {
		return Location{}, err
	}
	return loc, nil
}

// pathParser scans a dotted field path.
type pathParser struct {
	input string
	pos   int
}

func (p *pathParser) parseSegment() (Segment, error) {
	start := p.pos
	name := p.parseIdentifier()
	if name == "" {
		if p.done() {
			return Segment{}, p.errorf("expected field name")
		}
		return Segment{}, p.errorf("expected field name, found %q", p.peek())
	}
	field, err := ParseField(name)
	if err != nil {
		return Segment{}, &locerrors.ParseError{Input: p.input, Offset: start, Message: "unknown field", Cause: err}
	}

	seg := Segment{Field: field, Index: NoIndex}
	if !p.consume('[') {
		return seg, nil
	}
	digitsAt := p.pos
	digits := p.parseDigits()
	if digits == "" {
		return Segment{}, p.errorf("expected array index")
	}
	if !p.consume(']') {
		return Segment{}, p.errorf("expected ']' after index")
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil || Index(n) == NoIndex {
		return Segment{}, &locerrors.ParseError{Input: p.input, Offset: digitsAt, Message: "index out of range", Cause: err}
	}
	seg.Index = Index(n)
	return seg, nil
}

func (p *pathParser) parseIdentifier() string {
	start := p.pos
	for !p.done() {
		ch := p.peek()
		if ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') ||
			(p.pos > start && '0' <= ch && ch <= '9') {
			p.pos++
			continue
		}
		break
	}
	return p.input[start:p.pos]
}

func (p *pathParser) parseDigits() string {
	start := p.pos
	for !p.done() && '0' <= p.peek() && p.peek() <= '9' {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *pathParser) done() bool {
	return p.pos >= len(p.input)
}

func (p *pathParser) peek() byte {
	return p.input[p.pos]
}

func (p *pathParser) consume(ch byte) bool {
	if !p.done() && p.peek() == ch {
		p.pos++
		return true
	}
	return false
}

func (p *pathParser) errorf(format string, args ...any) error {
	return &locerrors.ParseError{Input: p.input, Offset: p.pos, Message: fmt.Sprintf(format, args...)}
}
