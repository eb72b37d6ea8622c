package cmd

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/session"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("base-url", "", "")
	cmd.Flags().String("token", "", "")
	cmd.Flags().String("token-file", "", "")
	return cmd
}

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		input     string
		want      int64
		expectErr bool
	}{
		{input: "1", want: 1},
		{input: "42", want: 42},
		{input: "0", expectErr: true},
		{input: "-3", expectErr: true},
		{input: "abc", expectErr: true},
		{input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseTaskID(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveBaseURL(t *testing.T) {
	cmd := newTestCmd()
	_, err := resolveBaseURL(cmd)
	assert.Error(t, err, "no base URL configured should fail")

	t.Setenv("TASKDECK_BASE_URL", "https://env.example.com")
	url, err := resolveBaseURL(cmd)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", url)

	// Flag wins over env
	require.NoError(t, cmd.Flags().Set("base-url", "https://flag.example.com"))
	url, err = resolveBaseURL(cmd)
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com", url)
}

func TestResolveTokenProvider_Static(t *testing.T) {
	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Set("token", "flag-token"))

	provider := resolveTokenProvider(cmd)
	require.IsType(t, &session.StaticProvider{}, provider)

	token, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "flag-token", token)
}

func TestResolveTokenProvider_EnvToken(t *testing.T) {
	cmd := newTestCmd()
	t.Setenv("TASKDECK_TOKEN", "env-token")

	provider := resolveTokenProvider(cmd)
	token, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "env-token", token)
}

func TestResolveTokenProvider_FileFallback(t *testing.T) {
	cmd := newTestCmd()
	t.Setenv("TASKDECK_TOKEN", "")
	t.Setenv("TASKDECK_TOKEN_FILE", "")

	provider := resolveTokenProvider(cmd)
	assert.IsType(t, &session.FileProvider{}, provider)
}
