package merge

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// maxDiffCells bounds the LCS table size. Inputs whose trimmed differing
// regions exceed it fail the merge, which callers resolve with their
// last-write-wins fallback. The bound is deterministic, so every replica
// makes the same call.
var maxDiffCells = 4 << 20

type opKind int

const (
	opInsert opKind = iota
	opDelete
	opReplace
)

// op is a single edit anchored at a rune position in the base text.
// length is the replaced/deleted span in the base; text is the inserted or
// replacement content.
type op struct {
	kind   opKind
	pos    int
	text   string
	length int
}

// Merge reconciles two concurrent edits of base: current is the server's
// text, newContent the client's. Both sides are diffed against base at
// character level, the server's edits are applied first, and the client's
// edits are transformed over them before being applied on top.
//
// The diff is canonical (LCS ties break smallest-index-first), so every
// replica produces the same merged output for the same inputs. A client edit
// whose span was entirely consumed by a server edit is dropped: the server
// rewrite wins the overlap. An error means the merge could not run; callers
// fall back to last-write-wins.
func Merge(base, current, newContent string) (string, error) {
	if base == current {
		return newContent, nil
	}

	baseRunes := []rune(base)

	serverOps, err := diffOps(baseRunes, []rune(current))
	if err != nil {
		return "", err
	}
	clientOps, err := diffOps(baseRunes, []rune(newContent))
	if err != nil {
		return "", err
	}

	// Server edits first, descending so earlier positions stay valid.
	buf := applyOps(baseRunes, reverseOps(serverOps))

	transformed := make([]op, 0, len(clientOps))
	for _, o := range clientOps {
		if t, keep := transformOp(o, serverOps); keep {
			transformed = append(transformed, t)
		}
	}
	sort.SliceStable(transformed, func(i, j int) bool {
		return transformed[i].pos > transformed[j].pos
	})

	return string(applyOps(buf, transformed)), nil
}

// diffOps computes the canonical edit sequence turning a into b, anchored at
// positions in a. Common prefix and suffix are trimmed before the LCS table
// is built so typical edits stay cheap.
func diffOps(a, b []rune) ([]op, error) {
	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix &&
		a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}

	am := a[prefix : len(a)-suffix]
	bm := b[prefix : len(b)-suffix]
	n, m := len(am), len(bm)

	if n > 0 && m > 0 && n*m > maxDiffCells {
		return nil, fmt.Errorf("diff too large: %dx%d runes", n, m)
	}

	// lcs[i*(m+1)+j] = LCS length of am[i:] and bm[j:].
	width := m + 1
	lcs := make([]int32, (n+1)*width)
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if am[i] == bm[j] {
				lcs[i*width+j] = lcs[(i+1)*width+j+1] + 1
			} else {
				lcs[i*width+j] = max(lcs[(i+1)*width+j], lcs[i*width+j+1])
			}
		}
	}

	var ops []op
	i, j := 0, 0
	for i < n || j < m {
		if i < n && j < m && am[i] == bm[j] {
			i++
			j++
			continue
		}
		// Walk a maximal non-matching region. Ties prefer consuming a,
		// which keeps the op sequence canonical.
		di, dj := i, j
		for i < n || j < m {
			if i < n && j < m && am[i] == bm[j] {
				break
			}
			if i < n && (j >= m || lcs[(i+1)*width+j] >= lcs[i*width+j+1]) {
				i++
			} else {
				j++
			}
		}
		switch {
		case di == i:
			ops = append(ops, op{kind: opInsert, pos: prefix + di, text: string(bm[dj:j])})
		case dj == j:
			ops = append(ops, op{kind: opDelete, pos: prefix + di, length: i - di})
		default:
			ops = append(ops, op{kind: opReplace, pos: prefix + di, text: string(bm[dj:j]), length: i - di})
		}
	}
	return ops, nil
}

// transformOp rebases a client op over the server's edit sequence, walking
// the server ops in ascending position order. The second return is false
// when the op should be dropped.
func transformOp(o op, server []op) (op, bool) {
	orig := o
	for _, s := range server {
		if s == orig {
			// Identical concurrent edit: apply once.
			return op{}, false
		}
		switch s.kind {
		case opInsert:
			if o.pos >= s.pos {
				o.pos += utf8.RuneCountInString(s.text)
			}
		case opDelete:
			o = transformAgainstSpan(o, s.pos, s.length, s.pos, -s.length)
		case opReplace:
			newLen := utf8.RuneCountInString(s.text)
			o = transformAgainstSpan(o, s.pos, s.length, s.pos+newLen, newLen-s.length)
		}
	}

	switch o.kind {
	case opInsert:
		if o.text == "" {
			return op{}, false
		}
	case opDelete, opReplace:
		if o.length <= 0 {
			return op{}, false
		}
	}
	return o, true
}

// transformAgainstSpan adjusts o for a server edit that rewrote the base span
// [p, p+oldLen). shift is the length delta for ops entirely past the span;
// clampTo is where overlapped ops land.
func transformAgainstSpan(o op, p, oldLen, clampTo, shift int) op {
	end := p + oldLen

	if o.kind == opInsert {
		if end <= o.pos {
			o.pos += shift
		} else if o.pos > p {
			o.pos = clampTo
		}
		return o
	}

	if end <= o.pos {
		o.pos += shift
		return o
	}
	overlap := min(end, o.pos+o.length) - max(p, o.pos)
	if overlap > 0 {
		o.pos = clampTo
		o.length -= overlap
	}
	return o
}

// applyOps applies ops to buf in the given order, clamping positions and
// spans to the buffer bounds. Callers pass ops in descending position order
// so earlier positions stay valid.
func applyOps(buf []rune, ops []op) []rune {
	for _, o := range ops {
		pos := min(max(o.pos, 0), len(buf))
		switch o.kind {
		case opInsert:
			buf = splice(buf, pos, 0, o.text)
		case opDelete:
			buf = splice(buf, pos, min(o.length, len(buf)-pos), "")
		case opReplace:
			buf = splice(buf, pos, min(o.length, len(buf)-pos), o.text)
		}
	}
	return buf
}

func splice(buf []rune, pos, cut int, text string) []rune {
	ins := []rune(text)
	out := make([]rune, 0, len(buf)-cut+len(ins))
	out = append(out, buf[:pos]...)
	out = append(out, ins...)
	out = append(out, buf[pos+cut:]...)
	return out
}

func reverseOps(ops []op) []op {
	out := make([]op, len(ops))
	for i, o := range ops {
		out[len(ops)-1-i] = o
	}
	return out
}
