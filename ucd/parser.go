package ucd

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	verr "github.com/nihei9/ucdgen/error"
)

// CodePointRange represents a closed range of code points.
type CodePointRange struct {
	From rune
	To   rune
}

var codePointRangeNil = &CodePointRange{
	From: 0,
	To:   0,
}

type field string

func (f field) codePoint() (rune, error) {
	return decodeHexToRune(string(f))
}

func (f field) codePointRange() (*CodePointRange, error) {
	var from, to rune
	var err error
	cp := reCodePointRange.FindStringSubmatch(string(f))
	if cp == nil {
		return codePointRangeNil, fmt.Errorf("invalid code point range: %v", string(f))
	}
	from, err = decodeHexToRune(cp[1])
	if err != nil {
		return codePointRangeNil, err
	}
	if cp[2] != "" {
		to, err = decodeHexToRune(cp[2])
		if err != nil {
			return codePointRangeNil, err
		}
	} else {
		to = from
	}
	if to < from {
		return codePointRangeNil, fmt.Errorf("a code point range must be ordered: %v", string(f))
	}
	return &CodePointRange{
		From: from,
		To:   to,
	}, nil
}

// codePointList parses a space-separated list of hexadecimal code points.
func (f field) codePointList() ([]rune, error) {
	var cps []rune
	for _, s := range strings.Fields(string(f)) {
		cp, err := decodeHexToRune(s)
		if err != nil {
			return nil, err
		}
		cps = append(cps, cp)
	}
	return cps, nil
}

// codePointOrZero parses an optional hexadecimal code point. An empty field
// yields 0.
func (f field) codePointOrZero() (rune, error) {
	if f == "" {
		return 0, nil
	}
	return decodeHexToRune(string(f))
}

func (f field) uint8Value() (uint8, error) {
	v, err := strconv.ParseUint(string(f), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric field: %v", string(f))
	}
	return uint8(v), nil
}

// int8ValueOrMinusOne parses an optional small signed integer. An empty field
// or a value that is not a plain integer (UnicodeData.txt holds fractions like
// -1/2 in the numeric fields) yields -1.
func (f field) int8ValueOrMinusOne() int8 {
	v, err := strconv.ParseInt(string(f), 10, 8)
	if err != nil {
		return -1
	}
	return int8(v)
}

func (f field) symbol() string {
	return string(f)
}

func decodeHexToRune(hexCodePoint string) (rune, error) {
	h := hexCodePoint
	if len(h)%2 != 0 {
		h = "0" + h
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return 0, fmt.Errorf("invalid code point: %v", hexCodePoint)
	}
	l := len(b)
	if l > 4 {
		return 0, fmt.Errorf("invalid code point: %v", hexCodePoint)
	}
	for i := 0; i < 4-l; i++ {
		b = append([]byte{0}, b...)
	}
	n := binary.BigEndian.Uint32(b)
	if n > codePointMax {
		return 0, fmt.Errorf("a code point must be in the range %#x..%#x: %x", codePointMin, codePointMax, n)
	}
	return rune(n), nil
}

var (
	reLine           = regexp.MustCompile(`^\s*(.*?)\s*(#.*)?$`)
	reCodePointRange = regexp.MustCompile(`^([[:xdigit:]]+)(?:..([[:xdigit:]]+))?$`)
)

// This parser can parse data files of Unicode Character Database (UCD).
// It converts each non-empty, non-comment line of a data file into a slice of
// fields: a trailing comment is cut off, the rest of the line is split on `;`
// keeping empty fields, and every field is trimmed of surrounding whitespace.
//
// Most of the data files use comments for humans only, so the parser drops
// comment lines by default. A parser that needs to see them (PropertyAliases.txt
// groups its records into sections announced by comment lines) can opt in via
// exposeComments.
//
// https://www.unicode.org/reports/tr44/#Format_Conventions
type parser struct {
	scanner *bufio.Scanner
	row     int
	fields  []field
	comment string
	err     error

	exposeComments bool

	fieldBuf []field
}

func newParser(r io.Reader) *parser {
	return &parser{
		scanner:  bufio.NewScanner(r),
		fieldBuf: make([]field, 50),
	}
}

func (p *parser) parse() bool {
	for p.scanner.Scan() {
		p.row++
		p.parseRecord(p.scanner.Text())
		if p.fields != nil || p.comment != "" {
			return true
		}
	}
	p.err = p.scanner.Err()
	return false
}

func (p *parser) parseRecord(src string) {
	ms := reLine.FindStringSubmatch(src)
	mFields := ms[1]
	mComment := ms[2]
	if mFields != "" {
		p.fields = parseFields(p.fieldBuf, mFields)
	} else {
		p.fields = nil
	}
	if p.exposeComments && mFields == "" {
		p.comment = mComment
	} else {
		p.comment = ""
	}
}

func parseFields(buf []field, src string) []field {
	n := 0
	for _, f := range strings.Split(src, ";") {
		buf[n] = field(strings.TrimSpace(f))
		n++
	}

	return buf[:n]
}

func newParseError(row int, cause error) error {
	return &verr.ParseError{
		Cause: cause,
		Row:   row,
	}
}
