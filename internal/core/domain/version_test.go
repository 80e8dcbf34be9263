package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ripple/internal/core/domain"
)

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0.0", "1.0.0.0", 0},
		{"1.0", "1.0.0.0", 0},
		{"0.9.9.9", "1.0.0.0", -1},
		{"0.9.9.82819", "0.9.9.9", 1},
		{"2.2.0.275", "2.2.0.249", 1},
		{"1.0.0.1-alpha", "1.0.0.0", 1},
		{"1.0.0.1-alpha", "1.0.0.1", -1},
		{"1.0.0.1-ALPHA", "1.0.0.1-alpha", 0},
		{"1.0.0.1-alpha", "1.0.0.1-beta", -1},
		{"10.0", "9.0", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			a := domain.MustParseVersion(tt.a)
			b := domain.MustParseVersion(tt.b)
			assert.Equal(t, tt.want, a.Compare(b))
			assert.Equal(t, -tt.want, b.Compare(a))
		})
	}
}

func TestParseVersion_Invalid(t *testing.T) {
	for _, s := range []string{"", "1", "a.b", "1.0.0.0.0", "1.0-", "1.0-1alpha", "1..0"} {
		_, err := domain.ParseVersion(s)
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, domain.ErrInvalidVersion), "%q: %v", s, err)
	}
}

func TestVersion_PreservesOriginalText(t *testing.T) {
	v := domain.MustParseVersion("1.0.0.1-Alpha")
	assert.Equal(t, "1.0.0.1-Alpha", v.String())
	assert.Equal(t, "Alpha", v.Special())
	assert.True(t, v.IsPreRelease())
	assert.False(t, v.IsZero())
	assert.True(t, domain.Version{}.IsZero())
}
