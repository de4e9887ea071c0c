package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cachekey/internal/adapters/config"
	"go.trai.ch/cachekey/internal/core/domain"
	"go.trai.ch/cachekey/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeJobs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.JobsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func TestLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	path := writeJobs(t, `
version: "1"
jobs:
  - label: fetch-cmake
    description: downloads cmake
    attributes:
      kind: toolchain
      cache:
        type: toolchain
        resources: [scripts/fetch.sh]
        parameters: [cmake_version]
  - label: lint
    command: ["make", "lint"]
`)

	jobs, err := loader.Load(path)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	fetch := jobs[0]
	assert.Equal(t, "fetch-cmake", fetch.Label)
	assert.Equal(t, "downloads cmake", fetch.Extra["description"])
	assert.Equal(t, "toolchain", fetch.Attributes.Extra["kind"])
	require.NotNil(t, fetch.Attributes.Cache)
	assert.Equal(t, "toolchain", fetch.Attributes.Cache.Type)
	assert.Equal(t, []string{"scripts/fetch.sh"}, fetch.Attributes.Cache.Resources)
	assert.Equal(t, []string{"cmake_version"}, fetch.Attributes.Cache.Parameters)
	assert.Nil(t, fetch.Cache)

	lint := jobs[1]
	assert.Equal(t, "lint", lint.Label)
	assert.Nil(t, lint.Attributes.Cache)
	assert.Equal(t, []any{"make", "lint"}, lint.Extra["command"])
}

func TestLoader_Load_NoVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	path := writeJobs(t, `
jobs:
  - label: a
`)

	jobs, err := loader.Load(path)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
}

func TestLoader_Load_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)
	loader := config.NewLoader(mockLogger)

	path := writeJobs(t, `version: "1"`)

	jobs, err := loader.Load(path)
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unsupported version",
			content: "version: \"2\"\njobs:\n  - label: a\n",
			wantErr: domain.ErrUnsupportedVersion,
		},
		{
			name:    "missing label",
			content: "jobs:\n  - label: a\n  - attributes: {}\n",
			wantErr: domain.ErrMissingLabel,
		},
		{
			name:    "duplicate label",
			content: "jobs:\n  - label: a\n  - label: b\n  - label: a\n",
			wantErr: domain.ErrDuplicateLabel,
		},
		{
			name:    "malformed yaml",
			content: "jobs: [\n",
			wantErr: domain.ErrJobsParseFailed,
		},
		{
			name:    "jobs is not a list",
			content: "jobs:\n  a: b\n",
			wantErr: domain.ErrJobsParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loader := config.NewLoader(mocks.NewMockLogger(ctrl))

			_, err := loader.Load(writeJobs(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrJobsReadFailed)
}
