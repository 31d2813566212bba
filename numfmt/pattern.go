package numfmt

import (
	"math/big"
	"strings"

	decimal "github.com/db47h/decfmt"
)

// pattern characters
const (
	patDigit     = '#'
	patZero      = '0'
	patGroup     = ','
	patDecimal   = '.'
	patSeparator = ';'
	patQuote     = '\''
	patMinus     = '-'
)

func isNumberChar(c byte) bool {
	return c == patDigit || c == patGroup || c == patDecimal || '0' <= c && c <= '9'
}

// subpattern is the result of parsing one side of a pattern.
type subpattern struct {
	prefix, suffix   string
	minInt           int
	minFrac, maxFrac int
	grouping         bool
	groupSize        int
	groupSize2       int
	showPoint        bool
	increment        *decimal.Decimal
}

type patternParser struct {
	src   string
	pos   int
	minus string
}

func (p *patternParser) errorf(msg string) error {
	return &PatternError{Pattern: p.src, Pos: p.pos, Msg: msg}
}

func (p *patternParser) done() bool { return p.pos >= len(p.src) }

// affix reads a prefix or suffix up to the number part, a subpattern
// separator or the end of the pattern. Quoted text is literal and '' is a
// single quote. An unquoted '-' stands for the minus sign.
func (p *patternParser) affix(stopAtNumber bool) (string, error) {
	var b strings.Builder
	for !p.done() {
		c := p.src[p.pos]
		switch {
		case c == patSeparator:
			return b.String(), nil
		case stopAtNumber && isNumberChar(c):
			return b.String(), nil
		case !stopAtNumber && isNumberChar(c):
			return "", p.errorf("number character in suffix")
		case c == patQuote:
			p.pos++
			if !p.done() && p.src[p.pos] == patQuote {
				b.WriteByte(patQuote)
				p.pos++
				continue
			}
			if err := p.quoted(&b); err != nil {
				return "", err
			}
		case c == patMinus:
			b.WriteString(p.minus)
			p.pos++
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return b.String(), nil
}

// quoted copies quoted text up to the closing quote into b. Within quotes,
// '' is a literal quote.
func (p *patternParser) quoted(b *strings.Builder) error {
	for !p.done() {
		c := p.src[p.pos]
		p.pos++
		if c != patQuote {
			b.WriteByte(c)
			continue
		}
		if p.done() || p.src[p.pos] != patQuote {
			return nil
		}
		b.WriteByte(patQuote)
		p.pos++
	}
	return p.errorf("unterminated quote")
}

// number reads the number part of a subpattern.
func (p *patternParser) number(sp *subpattern) error {
	start := p.pos
	var (
		intHash, intDigits  int
		fracZero, fracHash int
		inFraction         bool
		lastGroup          = -1 // integer digit count at the last ','
		prevGroup          = -1
		incDigits          []byte
		hasInc             bool
	)
	for ; !p.done() && isNumberChar(p.src[p.pos]); p.pos++ {
		c := p.src[p.pos]
		switch {
		case c == patDigit:
			if inFraction {
				fracHash++
				continue
			}
			if intDigits > 0 {
				return p.errorf("'#' after a digit in integer part")
			}
			intHash++
		case '0' <= c && c <= '9':
			if inFraction {
				if fracHash > 0 {
					return p.errorf("digit after '#' in fraction part")
				}
				fracZero++
			} else {
				intDigits++
			}
			incDigits = append(incDigits, c)
			hasInc = hasInc || c != patZero
		case c == patGroup:
			if inFraction {
				return p.errorf("grouping separator in fraction part")
			}
			prevGroup, lastGroup = lastGroup, intHash+intDigits
		case c == patDecimal:
			if inFraction {
				return p.errorf("multiple decimal separators")
			}
			inFraction = true
		}
	}
	if p.pos == start {
		return p.errorf("missing number part")
	}
	if intHash+intDigits+fracZero+fracHash == 0 {
		return p.errorf("number part has no digits")
	}

	sp.minInt = intDigits
	sp.minFrac = fracZero
	sp.maxFrac = fracZero + fracHash
	sp.showPoint = inFraction && sp.maxFrac == 0
	sp.groupSize = 3
	if lastGroup >= 0 {
		sp.grouping = true
		sp.groupSize = intHash + intDigits - lastGroup
		if sp.groupSize == 0 {
			return p.errorf("grouping separator at end of integer part")
		}
		if prevGroup >= 0 {
			if g2 := lastGroup - prevGroup; g2 != sp.groupSize {
				sp.groupSize2 = g2
			}
		}
	}
	if hasInc {
		var m big.Int
		m.SetString(string(incDigits), 10)
		inc := new(decimal.Decimal).SetInt(&m)
		sp.increment = inc.SetMantExp(inc, -fracZero)
	}
	return nil
}

func (p *patternParser) subpattern() (sp subpattern, err error) {
	if sp.prefix, err = p.affix(true); err != nil {
		return sp, err
	}
	if err = p.number(&sp); err != nil {
		return sp, err
	}
	sp.suffix, err = p.affix(false)
	return sp, err
}

// ApplyPattern sets f's digit bounds, grouping, rounding increment and affixes
// from pattern:
//
//	pattern    = subpattern [ ";" subpattern ] .
//	subpattern = [ prefix ] number [ suffix ] .
//	number     = integer [ "." fraction ] .
//	integer    = { "#" | "," } { digit | "," } .
//	fraction   = { digit } { "#" } .
//	digit      = "0" ... "9" .
//
// Digits 1 to 9 define a rounding increment. Affix characters may be quoted
// with single quotes; an unquoted '-' is replaced with the minus sign. The
// number part of the negative subpattern is ignored. ApplyPattern resets the
// multiplier to 1 and the maximum integer digits to MaxDigits; the rounding
// mode and symbols are kept. On error, f is left unchanged.
func (f *Formatter) ApplyPattern(pattern string) error {
	p := patternParser{src: pattern, minus: f.sym.Minus}
	pos, err := p.subpattern()
	if err != nil {
		return err
	}
	var neg subpattern
	hasNeg := false
	if !p.done() {
		// p.src[p.pos] == ';'
		p.pos++
		if neg, err = p.subpattern(); err != nil {
			return err
		}
		if !p.done() {
			return p.errorf("more than two subpatterns")
		}
		hasNeg = true
	}

	f.minInt, f.maxInt = pos.minInt, MaxDigits
	f.minFrac, f.maxFrac = pos.minFrac, pos.maxFrac
	f.grouping = pos.grouping
	f.groupSize, f.groupSize2 = pos.groupSize, pos.groupSize2
	f.showPoint = pos.showPoint
	f.increment = pos.increment
	f.multiplier = 1
	f.posPrefix, f.posSuffix = pos.prefix, pos.suffix
	f.negExplicit = hasNeg
	f.negPrefix, f.negSuffix = "", ""
	if hasNeg {
		f.negPrefix, f.negSuffix = neg.prefix, neg.suffix
	}
	return nil
}

// quoteAffix quotes s so that ApplyPattern reads it back literally.
func quoteAffix(s string) string {
	if !strings.ContainsAny(s, "#,.;'-0123456789") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// incDigit returns the digit of the rounding increment at 10**pow, if any.
func (f *Formatter) incDigit(pow int) (byte, bool) {
	if f.increment == nil {
		return 0, false
	}
	s := f.increment.Text('f', -1)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		dot = len(s)
	}
	i := dot - 1 - pow
	if pow < 0 {
		i = dot - pow
	}
	if i < 0 || i >= len(s) || i == dot {
		return 0, false
	}
	return s[i], true
}

// incWidth returns the number of significant integer digits and the number of
// fraction digits of the rounding increment.
func (f *Formatter) incWidth() (intDigits, fracDigits int) {
	if f.increment == nil {
		return 0, 0
	}
	intPart, frac, _ := strings.Cut(f.increment.Text('f', -1), ".")
	return len(strings.TrimLeft(intPart, "0")), len(frac)
}

// Pattern returns the pattern describing f. The multiplier, maximum integer
// digits, rounding mode and symbols are not part of a pattern.
//
// The digits of a rounding increment are always written. When they extend past
// the minimum integer or fraction digits, the pattern uses them as minimum
// digits: applying it back yields minimum digit counts raised to cover the
// increment.
func (f *Formatter) Pattern() string {
	var b strings.Builder
	number := f.numberPattern()
	b.WriteString(quoteAffix(f.posPrefix))
	b.WriteString(number)
	b.WriteString(quoteAffix(f.posSuffix))
	if f.negExplicit {
		b.WriteByte(patSeparator)
		b.WriteString(quoteAffix(f.negPrefix))
		b.WriteString(number)
		b.WriteString(quoteAffix(f.negSuffix))
	}
	return b.String()
}

func (f *Formatter) numberPattern() string {
	var b strings.Builder
	incInt, incFrac := f.incWidth()
	minInt := max(f.minInt, incInt)
	minFrac := max(f.minFrac, incFrac)
	maxFrac := max(f.maxFrac, minFrac)

	n := max(minInt, 1)
	if f.grouping {
		n = max(n, f.groupSize+1)
		if f.groupSize2 > 0 {
			n = max(n, f.groupSize+f.groupSize2+1)
		}
	}
	for i := n - 1; i >= 0; i-- {
		switch {
		case i >= minInt:
			b.WriteByte(patDigit)
		default:
			c, ok := f.incDigit(i)
			if !ok {
				c = patZero
			}
			b.WriteByte(c)
		}
		if f.grouping && i > 0 && (i == f.groupSize || f.groupSize2 > 0 && i == f.groupSize+f.groupSize2) {
			b.WriteByte(patGroup)
		}
	}
	if maxFrac > 0 || f.showPoint {
		b.WriteByte(patDecimal)
	}
	for k := 1; k <= maxFrac; k++ {
		if k > minFrac {
			b.WriteByte(patDigit)
			continue
		}
		c, ok := f.incDigit(-k)
		if !ok {
			c = patZero
		}
		b.WriteByte(c)
	}
	return b.String()
}
