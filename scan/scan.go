// Package scan implements the longest-match scanner: it drives an
// automaton.Automaton over an input iterator, using binary search on the
// range-sorted transition table built by package automaton.
package scan

import (
	"fmt"
	"io"

	"github.com/liran-funaro/derivex/automaton"
)

// Token is one yielded (rule name, matched text) pair.
type Token struct {
	Rule string
	Text string
}

// NoMatchError is returned when residual buffered input cannot start any
// match: no accept was recorded before the automaton got stuck.
type NoMatchError struct {
	Buffered []rune
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("scan: no match for %q", string(e.Buffered))
}

// Pack projects a matched subsequence of atoms to the value a Token
// carries as Text. The default packs code points into a string.
type Pack func(atoms []rune) string

func defaultPack(atoms []rune) string { return string(atoms) }

// Scanner is a lazy, single-cursor longest-match tokenizer. It pulls one
// atom at a time from the underlying io.RuneReader, buffers atoms
// belonging to the in-progress match, and releases the buffer prefix on
// every yielded token. A Scanner is not safe for concurrent use; distinct
// Scanners over the same Automaton are safe in parallel, since the
// Automaton is read-only.
type Scanner struct {
	a    *automaton.Automaton
	in   io.RuneReader
	pack Pack

	buffer []rune
	offset int
	state  int
	eof    bool

	lastAccept []string
	acceptPos  int
}

// New creates a Scanner over a, reading atoms from in, packing matches
// with the default code-point-to-string projection.
func New(a *automaton.Automaton, in io.RuneReader) *Scanner {
	return NewWithPack(a, in, defaultPack)
}

// NewWithPack creates a Scanner with a custom Pack projection.
func NewWithPack(a *automaton.Automaton, in io.RuneReader, pack Pack) *Scanner {
	return &Scanner{a: a, in: in, pack: pack}
}

// readAtom returns the atom at s.offset, pulling from the reader if it
// has not been buffered yet. ok is false at end of input.
func (s *Scanner) readAtom() (r rune, ok bool) {
	if s.offset < len(s.buffer) {
		return s.buffer[s.offset], true
	}
	if s.eof {
		return 0, false
	}
	c, _, err := s.in.ReadRune()
	if err != nil {
		s.eof = true
		return 0, false
	}
	s.buffer = append(s.buffer, c)
	return c, true
}

func (s *Scanner) resetTo(pos int) {
	s.buffer = append([]rune(nil), s.buffer[pos:]...)
	s.offset = 0
	s.state = 0
	s.lastAccept = nil
}

// Next returns the next longest-match token. It returns io.EOF once the
// input and buffer are fully drained, or a *NoMatchError when the
// buffered atoms cannot start any rule's match.
func (s *Scanner) Next() (Token, error) {
	for {
		s.lastAccept = nil
		s.acceptPos = 0

		for {
			if accept := s.a.Accepts[s.state]; len(accept) > 0 {
				s.lastAccept = accept
				s.acceptPos = s.offset
			}
			atom, ok := s.readAtom()
			if !ok {
				s.state = s.a.Error
				break
			}
			s.state = s.a.Step(s.state, atom)
			s.offset++
			if s.state == s.a.Error {
				break
			}
		}

		if s.lastAccept != nil {
			// accept_pos > 0 is the invariant that guarantees forward
			// progress; automaton.Construct already rejects rules that
			// are nullable at the start state, so a zero-length accept
			// here would indicate a construction bug, not user input.
			if s.acceptPos == 0 {
				panic("scan: zero-length accept; automaton should have rejected a nullable rule")
			}
			text := s.pack(s.buffer[:s.acceptPos])
			tok := Token{Rule: s.lastAccept[0], Text: text}
			s.resetTo(s.acceptPos)
			return tok, nil
		}

		if len(s.buffer) > 0 {
			return Token{}, &NoMatchError{Buffered: append([]rune(nil), s.buffer...)}
		}
		return Token{}, io.EOF
	}
}

// All drains the scanner into a slice, for tests and small inputs. It
// stops on the first NoMatchError and returns it together with the
// tokens produced before it.
func All(s *Scanner) ([]Token, error) {
	var out []Token
	for {
		tok, err := s.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
}
