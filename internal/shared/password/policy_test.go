package password_test

import (
	"strings"
	"testing"

	"github.com/HikaruIzuno/dailyreport-system/internal/shared/password"
	"github.com/stretchr/testify/assert"
)

func TestValidate_HalfWidth(t *testing.T) {
	cases := []struct {
		name      string
		candidate string
	}{
		{"symbol", "abcd-1234"},
		{"space", "abcd 1234"},
		{"full width digits", "ｐａｓｓｗｏｒｄ１"},
		{"japanese", "ぱすわーど1234"},
		{"empty", ""},
		{"underscore", "pass_word123"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := password.Validate(tc.candidate)
			assert.ErrorIs(t, err, password.ErrHalfWidth)
		})
	}
}

func TestValidate_Length(t *testing.T) {
	cases := []struct {
		name      string
		candidate string
		wantErr   error
	}{
		{"seven chars", "abcd123", password.ErrLength},
		{"eight chars", "abcd1234", nil},
		{"sixteen chars", strings.Repeat("a1", 8), nil},
		{"seventeen chars", strings.Repeat("a", 17), password.ErrLength},
		{"single char", "a", password.ErrLength},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := password.Validate(tc.candidate)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidate_HalfWidthCheckedFirst(t *testing.T) {
	// Too short AND non-alphanumeric: the character-set rule wins.
	err := password.Validate("ab-1")
	assert.ErrorIs(t, err, password.ErrHalfWidth)
}

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("abcd1234")
	assert.NoError(t, err)
	assert.NotEqual(t, "abcd1234", hash)

	assert.True(t, password.Verify(hash, "abcd1234"))
	assert.False(t, password.Verify(hash, "abcd12345"))
}

func TestHash_NotDeterministic(t *testing.T) {
	first, err := password.Hash("abcd1234")
	assert.NoError(t, err)
	second, err := password.Hash("abcd1234")
	assert.NoError(t, err)

	// bcrypt salts every hash; equality would mean the salt is gone.
	assert.NotEqual(t, first, second)
}
