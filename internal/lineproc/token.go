package lineproc

// TokenCapacity is the number of usable bytes in a Token.
const TokenCapacity = 9

// Token is a fixed-capacity byte buffer holding one whitespace-delimited word.
// The backing array keeps a zero terminator after the stored bytes; the
// terminator slot is never exposed.
type Token struct {
	buf [TokenCapacity + 1]byte
	n   int
}

// NewToken copies at most TokenCapacity bytes of s into a Token.
// It reports whether s was cut short.
func NewToken(s string) (Token, bool) {
	var t Token
	for i := 0; i < len(s); i++ {
		if !t.append(s[i]) {
			return t, true
		}
	}
	return t, false
}

// append stores c and reports whether there was room for it.
func (t *Token) append(c byte) bool {
	if t.n == TokenCapacity {
		return false
	}
	t.buf[t.n] = c
	t.n++
	t.buf[t.n] = 0
	return true
}

// Len returns the length of the word up to the first zero byte, the way a
// C string is measured. A zero byte read from the input ends the word.
func (t *Token) Len() int {
	for i := 0; i < t.n; i++ {
		if t.buf[i] == 0 {
			return i
		}
	}
	return t.n
}

// Full reports whether the buffer holds TokenCapacity bytes.
func (t *Token) Full() bool {
	return t.n == TokenCapacity
}

// Bytes returns the first Len bytes. The slice aliases the buffer.
func (t *Token) Bytes() []byte {
	return t.buf[:t.Len()]
}

func (t *Token) String() string {
	return string(t.buf[:t.Len()])
}

// Reverse reverses the first Len bytes in place, swapping from both ends
// toward the middle.
func (t *Token) Reverse() {
	for i, j := 0, t.Len()-1; i < j; i, j = i+1, j-1 {
		t.buf[i], t.buf[j] = t.buf[j], t.buf[i]
	}
}
