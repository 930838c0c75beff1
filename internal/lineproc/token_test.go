package lineproc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken_FitsCapacity(t *testing.T) {
	tok, cut := NewToken("abc")
	assert.False(t, cut)
	assert.Equal(t, 3, tok.Len())
	assert.Equal(t, "abc", tok.String())
	assert.False(t, tok.Full())
}

func TestNewToken_ExactlyCapacity(t *testing.T) {
	tok, cut := NewToken("abcdefghi")
	assert.False(t, cut)
	assert.True(t, tok.Full())
	assert.Equal(t, "abcdefghi", tok.String())
}

func TestNewToken_Truncates(t *testing.T) {
	tok, cut := NewToken("abcdefghij")
	assert.True(t, cut)
	assert.Equal(t, TokenCapacity, tok.Len())
	assert.Equal(t, "abcdefghi", tok.String())
}

func TestToken_TerminatorSlotStaysZero(t *testing.T) {
	tok, _ := NewToken("abcdefghijkl")
	assert.Equal(t, byte(0), tok.buf[TokenCapacity])
}

func TestToken_Reverse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"z", "z"},
		{"ab", "ba"},
		{"abc", "cba"},
		{"abcd", "dcba"},
		{"abcdefghi", "ihgfedcba"},
		{"a-b_c!", "!c_b-a"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tok, cut := NewToken(tt.in)
			require.False(t, cut)
			tok.Reverse()
			assert.Equal(t, tt.want, tok.String())
			assert.Equal(t, len(tt.in), tok.Len())
		})
	}
}

func TestToken_ReverseIsInvolution(t *testing.T) {
	alphabet := "abcdefghijklmnopqrstuvwxyz0123456789!#$%&*+-./:;<=>?@"
	for length := 0; length <= TokenCapacity; length++ {
		for offset := 0; offset < len(alphabet); offset += 7 {
			var sb strings.Builder
			for i := 0; i < length; i++ {
				sb.WriteByte(alphabet[(offset+i*3)%len(alphabet)])
			}
			word := sb.String()

			t.Run(fmt.Sprintf("%d/%s", length, word), func(t *testing.T) {
				tok, _ := NewToken(word)
				tok.Reverse()
				tok.Reverse()
				assert.Equal(t, word, tok.String())
			})
		}
	}
}

func TestToken_BytesAliasesBuffer(t *testing.T) {
	tok, _ := NewToken("abc")
	b := tok.Bytes()
	require.Len(t, b, 3)
	tok.Reverse()
	assert.Equal(t, "cba", string(b))
}

func TestToken_StopsAtZeroByte(t *testing.T) {
	tok, cut := NewToken("ab\x00cd")
	require.False(t, cut)
	assert.Equal(t, 2, tok.Len())
	assert.Equal(t, "ab", tok.String())

	tok.Reverse()
	assert.Equal(t, "ba", tok.String())
	assert.False(t, tok.Full())
}

func TestToken_ZeroByteDoesNotFreeCapacity(t *testing.T) {
	tok, cut := NewToken("a\x00cdefghijk")
	assert.True(t, cut)
	assert.True(t, tok.Full())
	assert.Equal(t, 1, tok.Len())
}
