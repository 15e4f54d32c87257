package cli

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0reilly/github-api-rate-limit-tester/internal/config"
	"github.com/0reilly/github-api-rate-limit-tester/internal/output"
	"github.com/0reilly/github-api-rate-limit-tester/internal/pattern"
)

func TestNewSession_RequiresToken(t *testing.T) {
	t.Setenv(tokenEnvVar, "")

	_, err := newSession(burstCmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), tokenEnvVar)
}

func TestNewSession_Defaults(t *testing.T) {
	t.Setenv(tokenEnvVar, "test-token")

	sess, err := newSession(burstCmd)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultBaseURL, sess.settings.BaseURL)
	assert.Equal(t, config.DefaultEndpoint, sess.settings.Endpoint)
	assert.Equal(t, config.Duration(config.DefaultTimeout), sess.settings.Timeout)
	assert.Equal(t, config.DefaultUserAgent, sess.settings.UserAgent)
	assert.Equal(t, output.FormatText, sess.format)
}

func TestApplySettingsDefaults_KeepsExplicitValues(t *testing.T) {
	s := config.Settings{
		BaseURL:  "https://ghe.example.com/api/v3",
		Endpoint: "/rate_limit",
		Timeout:  config.Duration(5 * time.Second),
	}
	applySettingsDefaults(&s)

	assert.Equal(t, "https://ghe.example.com/api/v3", s.BaseURL)
	assert.Equal(t, "/rate_limit", s.Endpoint)
	assert.Equal(t, config.Duration(5*time.Second), s.Timeout)
	assert.Equal(t, config.DefaultUserAgent, s.UserAgent)
}

func TestSession_Execute_WritesArtifacts(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if got := r.Header.Get("Authorization"); got != "token test-token" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("X-RateLimit-Limit", "5000")
		w.Header().Set("X-RateLimit-Remaining", "4999")
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "results.csv")
	htmlPath := filepath.Join(dir, "report.html")

	sess := &session{
		settings: config.Settings{
			BaseURL:   server.URL,
			Endpoint:  "/users/octocat",
			Timeout:   config.Duration(5 * time.Second),
			UserAgent: config.DefaultUserAgent,
		},
		token:     "test-token",
		noColor:   true,
		csvPath:   csvPath,
		htmlPath:  htmlPath,
		format:    output.FormatJSON,
		formatter: output.NewFormatter(false, true),
	}

	err := sess.execute(context.Background(), "probe", []pattern.Config{pattern.Burst(3)})
	require.NoError(t, err)

	csvData, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(csvData), "\n"), "header + 3 records")

	htmlData, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(htmlData), "latencyChart")
}

func TestSession_Execute_InvalidConfigFails(t *testing.T) {
	sess := &session{
		settings:  config.Settings{BaseURL: "http://127.0.0.1:1", Timeout: config.Duration(time.Second)},
		token:     "test-token",
		format:    output.FormatJSON,
		formatter: output.NewFormatter(false, true),
	}

	err := sess.execute(context.Background(), "probe", []pattern.Config{pattern.Burst(0)})
	require.Error(t, err)
	assert.IsType(t, &pattern.ValidationError{}, err)
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range RootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"burst", "sustained", "delayed", "plan", "check"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}
