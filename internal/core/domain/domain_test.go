package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cachekey/internal/core/domain"
)

func TestJob_Clone(t *testing.T) {
	original := domain.Job{
		Label: "build-foo",
		Attributes: domain.Attributes{
			Cache: &domain.CacheAttributes{
				Type:       "docker-image",
				Resources:  []string{"a.txt", "b.txt"},
				Parameters: []string{"p1"},
			},
			Extra: map[string]any{"kind": "docker-image"},
		},
		Cache: &domain.CacheDescriptor{
			Type:       "docker-image",
			Name:       "build-foo",
			DigestData: []string{"H1"},
		},
		Extra: map[string]any{"description": "builds foo"},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Attributes.Cache.Resources[0] = "changed.txt"
	clone.Attributes.Cache.Parameters = append(clone.Attributes.Cache.Parameters, "p2")
	clone.Attributes.Extra["kind"] = "changed"
	clone.Cache.DigestData[0] = "changed"
	clone.Extra["description"] = "changed"

	assert.Equal(t, "a.txt", original.Attributes.Cache.Resources[0])
	assert.Equal(t, []string{"p1"}, original.Attributes.Cache.Parameters)
	assert.Equal(t, "docker-image", original.Attributes.Extra["kind"])
	assert.Equal(t, "H1", original.Cache.DigestData[0])
	assert.Equal(t, "builds foo", original.Extra["description"])
}

func TestJob_CloneWithoutCache(t *testing.T) {
	original := domain.Job{Label: "lint"}

	clone := original.Clone()

	assert.Equal(t, "lint", clone.Label)
	assert.Nil(t, clone.Cache)
	assert.Nil(t, clone.Attributes.Cache)
	assert.Nil(t, clone.Extra)
}

func TestCacheDescriptor_CloneNeverNil(t *testing.T) {
	d := domain.CacheDescriptor{Type: "toolchain", Name: "fetch-cmake"}

	clone := d.Clone()

	require.NotNil(t, clone.DigestData)
	assert.Empty(t, clone.DigestData)
}

func TestHashAlgorithm_Valid(t *testing.T) {
	tests := []struct {
		algo domain.HashAlgorithm
		want bool
	}{
		{domain.HashSHA256, true},
		{domain.HashXX, true},
		{"md5", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.algo.Valid())
		})
	}
}

func TestOutputFormat_Valid(t *testing.T) {
	assert.True(t, domain.FormatJSON.Valid())
	assert.True(t, domain.FormatYAML.Valid())
	assert.True(t, domain.FormatText.Valid())
	assert.False(t, domain.OutputFormat("xml").Valid())
	assert.Equal(t, domain.FormatJSON, domain.OutputFormats()[0])
	assert.Equal(t, domain.HashSHA256, domain.HashAlgorithms()[0])
}
