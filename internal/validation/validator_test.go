package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	msgs := DefaultMessages()
	cases := []struct {
		name  string
		value string
		want  string
	}{
		{"empty is required", "", msgs.EmailRequired},
		{"plain address", "a@b.co", ""},
		{"subdomain", "user.name@mail.example.com", ""},
		{"dot run inside domain", "a@b.c.d", ""},
		{"no at sign", "user.example.com", msgs.EmailInvalid},
		{"no dot after at", "user@localhost", msgs.EmailInvalid},
		{"nothing before at", "@example.com", msgs.EmailInvalid},
		{"trailing dot only", "a@b.", msgs.EmailInvalid},
		{"embedded space", "a b@c.d", msgs.EmailInvalid},
		{"non breaking space", "a\u00a0b@c.d", msgs.EmailInvalid},
		{"two at signs", "a@b@c.d", msgs.EmailInvalid},
		{"whitespace only", "   ", msgs.EmailInvalid},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ValidateEmail(tc.value))
		})
	}
}

func TestValidateEmailWithoutAtIsAlwaysInvalid(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"x", "gmail.com", "a.b.c", "한글", "a-b_c"} {
		require.False(t, strings.Contains(value, "@"))
		assert.Equal(t, DefaultMessages().EmailInvalid, ValidateEmail(value), value)
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	msgs := DefaultMessages()
	cases := []struct {
		name  string
		value string
		want  string
	}{
		{"empty is required", "", msgs.PasswordRequired},
		{"too short", "ab12", "Password must be at least 8 characters"},
		{"seven runes", "abc1234", "Password must be at least 8 characters"},
		{"letters only", "abcdefgh", msgs.PasswordComposition},
		{"digits only", "12345678", msgs.PasswordComposition},
		{"digits before letters", "12345678a", ""},
		{"letters before digits", "abcdefg1", ""},
		{"non ascii letters do not count", "비밀번호비밀번호1", msgs.PasswordComposition},
		{"letter and digit on different lines", "abcdefg\n12345678", msgs.PasswordComposition},
		{"letter and digit share a later line", "abcdefgh\nx1", ""},
		{"symbols allowed", "p@ss w0rd!", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ValidatePassword(tc.value))
		})
	}
}

func TestValidateRequired(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Please enter Title", ValidateRequired("", "Title"))
	assert.Equal(t, "Please enter Title", ValidateRequired(" \t\n", "Title"))
	assert.Equal(t, "", ValidateRequired(" x ", "Title"))
}

func TestValidateLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Title must be at least 2 characters", ValidateLength("a", 2, 5, "Title"))
	assert.Equal(t, "Title must be at most 5 characters", ValidateLength("abcdef", 2, 5, "Title"))
	assert.Equal(t, "", ValidateLength("abc", 2, 5, "Title"))
	assert.Equal(t, "", ValidateLength("ab", 2, 5, "Title"))
	assert.Equal(t, "", ValidateLength("abcde", 2, 5, "Title"))
	assert.Equal(t, "", ValidateLength("제목제목", 2, 5, "Title"), "length counts runes")
}

func TestValidateLengthInvertedBoundsAreSwapped(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Title must be at least 2 characters", ValidateLength("a", 5, 2, "Title"))
	assert.Equal(t, "Title must be at most 5 characters", ValidateLength("abcdef", 5, 2, "Title"))
	assert.Equal(t, "", ValidateLength("abc", 5, 2, "Title"))
}

func TestKoreanCatalog(t *testing.T) {
	t.Parallel()

	v := New(MessagesFor("ko-KR"))
	assert.Equal(t, "이메일을 입력해주세요", v.Email(""))
	assert.Equal(t, "비밀번호는 8자 이상이어야 합니다", v.Password("a1"))
	assert.Equal(t, "제목을(를) 입력해주세요", v.Required("", "제목"))
	assert.Equal(t, "제목은(는) 50자 이하여야 합니다", v.Length(strings.Repeat("가", 51), 0, 50, "제목"))
	assert.Equal(t, "비밀번호가 일치하지 않습니다", v.Match("a", "b"))
}

func TestMessagesForUnknownLocaleFallsBack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultMessages(), MessagesFor("fr"))
	assert.Equal(t, DefaultMessages(), MessagesFor(""))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	v := New(DefaultMessages())
	assert.Equal(t, "", v.Match("", "secret"), "empty confirmation is not reported")
	assert.Equal(t, "", v.Match("secret", "secret"))
	assert.Equal(t, "Passwords do not match", v.Match("secreT", "secret"))
	assert.Equal(t, "Passwords do not match", ValidateMatch("x", "y"))
}

func TestChainShortCircuits(t *testing.T) {
	t.Parallel()

	v := New(DefaultMessages())
	var lengthCalls int
	length := v.LengthFunc(3, 10, "Nickname")
	counting := func(value string) string {
		lengthCalls++
		return length(value)
	}

	check := Chain(v.RequiredFunc("Nickname"), nil, counting)

	assert.Equal(t, "Please enter Nickname", check("  "))
	assert.Equal(t, 0, lengthCalls, "length must not run after required fails")

	assert.Equal(t, "Nickname must be at least 3 characters", check("ab"))
	assert.Equal(t, "", check("abcd"))
	assert.Equal(t, 2, lengthCalls)
}

func TestOptionalSkipsEmpty(t *testing.T) {
	t.Parallel()

	check := Optional(ValidateEmail)
	assert.Equal(t, "", check(""))
	assert.Equal(t, DefaultMessages().EmailInvalid, check("nope"))
	assert.Equal(t, "", Optional(nil)("x"))
}

func TestMatchFuncReadsCurrentValue(t *testing.T) {
	t.Parallel()

	password := "first1234"
	check := New(DefaultMessages()).MatchFunc(func() string { return password })

	assert.Equal(t, "", check("first1234"))
	password = "second1234"
	assert.NotEmpty(t, check("first1234"))
}
