package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/horoscope/internal/build"
	"github.com/joestump/horoscope/internal/horoscope"
)

const okCandidate = `{"candidates":[{"content":{"role":"model","parts":[{"text":"Bonne journée"}]},"finishReason":"STOP"}]}`

func cgiEnv(key string) string {
	if key == "GATEWAY_INTERFACE" {
		return "CGI/1.1"
	}
	return ""
}

func noEnv(string) string { return "" }

// Under a web server, argv comes from the query string and must never select
// a subcommand or a flag.
func TestRun_CGIIgnoresArgs_Error(t *testing.T) {
	want := string(horoscope.CGIResponse("", assert.AnError))

	for _, args := range [][]string{nil, {"version"}, {"--help"}, {"serve"}, {"once", "--sign", "Lion"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			clearEnv(t)

			var stdout, stderr bytes.Buffer
			code := run(args, cgiEnv, &stdout, &stderr)

			assert.Equal(t, 0, code)
			assert.Equal(t, want, stdout.String())
		})
	}
}

func TestRun_CGIIgnoresArgs_Success(t *testing.T) {
	want := "Content-Type: text/html\r\n\r\n<html><p>Bonne journée</p></html>"

	for _, args := range [][]string{{"version"}, {"--help"}, {"serve"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			dir := clearEnv(t)
			writeAssets(t, dir)
			srv, calls := gemini(t, http.StatusOK, okCandidate)
			t.Setenv("HOROSCOPE_GEMINI_API_KEY", "k")
			t.Setenv("HOROSCOPE_GEMINI_BASE_URL", srv.URL)

			var stdout, stderr bytes.Buffer
			code := run(args, cgiEnv, &stdout, &stderr)

			assert.Equal(t, 0, code)
			assert.Equal(t, want, stdout.String())
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestRun_CommandLine(t *testing.T) {
	clearEnv(t)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"version"}, noEnv, &stdout, &stderr))
	assert.Equal(t, build.String()+"\n", stdout.String())

	stdout.Reset()
	assert.Equal(t, 1, run([]string{"bogus"}, noEnv, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}

func TestOnceCmd_ForcedSign(t *testing.T) {
	dir := clearEnv(t)
	writeAssets(t, dir)

	var (
		mu     sync.Mutex
		bodies []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, okCandidate)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("HOROSCOPE_GEMINI_API_KEY", "k")
	t.Setenv("HOROSCOPE_GEMINI_BASE_URL", srv.URL)

	cmd := newOnceCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--sign", "lion"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "<html><p>Bonne journée</p></html>", stdout.String())
	assert.NotContains(t, stdout.String(), "Content-Type:")
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "Horoscope pour Lion")
}

func TestOnceCmd_UnknownSign(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOROSCOPE_GEMINI_API_KEY", "k")

	cmd := newOnceCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--sign", "Ophiuchus"})
	assert.Error(t, cmd.Execute())
}
