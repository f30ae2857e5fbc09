package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"user", PrefixUser},
		{"song", PrefixSong},
		{"custom", "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.prefix)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(got, tt.prefix+"-"))

			// NanoID default is 21 URL-safe characters after the prefix.
			token := strings.TrimPrefix(got, tt.prefix+"-")
			assert.Len(t, token, 21)
			for _, char := range token {
				assert.True(t,
					(char >= 'A' && char <= 'Z') ||
						(char >= 'a' && char <= 'z') ||
						(char >= '0' && char <= '9') ||
						char == '_' || char == '-',
					"character %c should be URL-safe", char)
			}
		})
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	ids := make(map[string]bool)
	count := 1000

	for i := 0; i < count; i++ {
		got, err := Generate(PrefixSong)
		require.NoError(t, err)
		assert.False(t, ids[got], "ID should be unique: %s", got)
		ids[got] = true
	}

	assert.Len(t, ids, count)
}

func TestMustGenerate(t *testing.T) {
	got := MustGenerate(PrefixUser)
	assert.True(t, strings.HasPrefix(got, "user-"))
	assert.Equal(t, len("user")+1+21, len(got))
}
