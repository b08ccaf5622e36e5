package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrestNiraj12/terminalsentiment/infra/config"
)

func TestExecute_ParsesFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options
	}{
		{name: "run default", args: nil, want: options{route: "/"}},
		{name: "backend url", args: []string{"--backend-url", "http://api.local:5000"}, want: options{route: "/", backendURL: "http://api.local:5000"}},
		{name: "route", args: []string{"--route", "/posts/golang/abc"}, want: options{route: "/posts/golang/abc"}},
		{name: "debug and metrics", args: []string{"--debug", "--metrics-addr", ":9464"}, want: options{route: "/", debug: true, metricsAddr: ":9464"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got options
			var out, errOut bytes.Buffer
			code := execute(tc.args, &out, &errOut, func(o options) error {
				got = o
				return nil
			})
			require.Equal(t, 0, code, errOut.String())
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExecute_InvalidArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	called := false
	code := execute([]string{"--bogus"}, &out, &errOut, func(options) error {
		called = true
		return nil
	})
	assert.Equal(t, 1, code)
	assert.False(t, called)
	assert.Contains(t, errOut.String(), "unknown flag: --bogus")

	code = execute([]string{"extra"}, &out, &errOut, func(options) error { return nil })
	assert.Equal(t, 1, code)
}

func TestExecute_RunErrorExitsNonZero(t *testing.T) {
	var out, errOut bytes.Buffer
	code := execute(nil, &out, &errOut, func(options) error { return errors.New("boom") })
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "boom")
}

func TestExecute_Version(t *testing.T) {
	var out, errOut bytes.Buffer
	called := false
	code := execute([]string{"version"}, &out, &errOut, func(options) error {
		called = true
		return nil
	})
	require.Equal(t, 0, code)
	assert.False(t, called)
	assert.Contains(t, out.String(), "TerminalSentiment ")
	assert.Contains(t, out.String(), "commit: ")
}

func TestApplyOptions(t *testing.T) {
	base := config.Config{
		BackendBaseURL: config.DefaultBackendURL,
		LogLevel:       logrus.InfoLevel,
	}

	cfg, err := applyOptions(base, options{})
	require.NoError(t, err)
	assert.Equal(t, base, cfg)

	cfg, err = applyOptions(base, options{backendURL: "https://api.example.com/", debug: true, metricsAddr: ":9464"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.BackendBaseURL)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, ":9464", cfg.MetricsAddr)

	_, err = applyOptions(base, options{backendURL: "ftp://nope"})
	assert.Error(t, err)
}

func TestResolveVersionInfo(t *testing.T) {
	v, c, d := resolveVersionInfo("dev", "none", "unknown", "v1.2.3", map[string]string{
		"vcs.revision": "0123456789abcdef",
		"vcs.time":     "2026-01-02T03:04:05Z",
	})
	assert.Equal(t, "v1.2.3", v)
	assert.Equal(t, "0123456789ab", c)
	assert.Equal(t, "2026-01-02T03:04:05Z", d)

	v, c, d = resolveVersionInfo("v9", "abc", "today", "(devel)", nil)
	assert.Equal(t, "v9", v)
	assert.Equal(t, "abc", c)
	assert.Equal(t, "today", d)
}
