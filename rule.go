package zenkaku

// Rule recognizes one or more decorative digits by their UTF-8 byte
// sequence. Every sequence a rule matches has the same fixed length: a
// shared byte prefix plus one final byte. The final byte is mapped
// linearly onto a run of digit values, so a contiguous codepoint block
// like fullwidth U+FF10..U+FF19 needs a single rule, while an outlier
// zero or a non-contiguous script uses single-sequence rules.
type Rule struct {
	prefix []byte
	lo, hi byte
	first  int
}

// Run returns a rule matching prefix followed by a final byte in
// [lo, lo+count-1], yielding digits first..first+count-1.
func Run(first int, prefix []byte, lo byte, count int) Rule {
	return Rule{
		prefix: prefix,
		lo:     lo,
		hi:     lo + byte(count-1),
		first:  first,
	}
}

// Exact returns a rule matching exactly seq and yielding digit.
func Exact(digit int, seq ...byte) Rule {
	last := len(seq) - 1
	return Rule{
		prefix: seq[:last],
		lo:     seq[last],
		hi:     seq[last],
		first:  digit,
	}
}

// size returns the byte length of every sequence the rule matches.
func (r Rule) size() int {
	return len(r.prefix) + 1
}

// match reports whether the bytes at text[i:] begin with one of the
// rule's sequences, and if so which digit they encode. A tail shorter
// than the sequence never matches.
func (r Rule) match(text string, i int) (digit int, ok bool) {
	if i+r.size() > len(text) {
		return 0, false
	}
	for j, p := range r.prefix {
		if text[i+j] != p {
			return 0, false
		}
	}
	last := text[i+len(r.prefix)]
	if last < r.lo || last > r.hi {
		return 0, false
	}
	return r.first + int(last-r.lo), true
}

// sequences expands the rule into every concrete byte sequence it
// matches, paired with the digit each yields. Used for validation only.
func (r Rule) sequences() map[string]int {
	seqs := make(map[string]int, int(r.hi-r.lo)+1)
	for last := r.lo; ; last++ {
		seq := make([]byte, 0, r.size())
		seq = append(seq, r.prefix...)
		seq = append(seq, last)
		seqs[string(seq)] = r.first + int(last-r.lo)
		if last == r.hi {
			break
		}
	}
	return seqs
}
