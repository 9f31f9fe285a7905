package demo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when stdin ends before a prompt is answered.
var ErrInputClosed = errors.New("demo: input closed")

// prompter asks questions on out and reads whitespace-separated answers
// from in, repeating a question until the answer is acceptable.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	s := bufio.NewScanner(in)
	s.Split(bufio.ScanWords)

	return &prompter{in: s, out: out}
}

func (p *prompter) next(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
		}
		return "", ErrInputClosed
	}

	return p.in.Text(), nil
}

// intInRange asks until an integer in [lo, hi] is entered.
func (p *prompter) intInRange(question string, lo, hi int) (int, error) {
	for {
		tok, err := p.next(question)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(tok)
		if err == nil && v >= lo && v <= hi {
			return v, nil
		}
	}
}

// yesNo asks until "y" or "n" is entered.
func (p *prompter) yesNo(question string) (bool, error) {
	for {
		tok, err := p.next(question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(tok) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
	}
}
