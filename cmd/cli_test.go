package cmd

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/kriju0726/HealiFy/internal/devserver"
	"github.com/kriju0726/HealiFy/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), startServer(t), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestAssessListShowsCatalog(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), startServer(t), "assess", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "diabetes")
	assert.Contains(t, stdout, "heart_disease")
	assert.Contains(t, stdout, "thyroid")
}

func TestProtectedCommandsRequireLogin(t *testing.T) {
	home := t.TempDir()
	server := startServer(t)

	for _, args := range [][]string{
		{"profile", "show"},
		{"assess", "run", "diabetes"},
		{"history"},
	} {
		_, _, err := executeCLI(t, home, server, args...)
		require.Error(t, err, "command %v must be guarded", args)
		assert.Contains(t, err.Error(), "sign in required")
	}
}

func TestLoginPersistsSessionAcrossInvocations(t *testing.T) {
	home := t.TempDir()
	server := startServer(t)

	registerAndLogin(t, home, server)

	// A fresh invocation recovers the session from disk.
	stdout, _, err := executeCLI(t, home, server, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Age:")
}

func TestAssessRunBlockedUntilProfileComplete(t *testing.T) {
	home := t.TempDir()
	server := startServer(t)

	registerAndLogin(t, home, server)

	_, _, err := executeCLI(t, home, server, "assess", "run", "diabetes", "--answer", "fatigue=40")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "complete your profile first")
}

func TestAssessRunFullFlow(t *testing.T) {
	home := t.TempDir()
	server := startServer(t)

	registerAndLogin(t, home, server)
	completeProfile(t, home, server)

	stdout, _, err := executeCLI(t, home, server,
		"assess", "run", "diabetes",
		"--answer", "frequent_urination=80",
		"--answer", "excessive_thirst=60",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "%")
	assert.Contains(t, stdout, "frequent urination")

	stdout, _, err = executeCLI(t, home, server, "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Diabetes")
}

func TestAssessRunWithoutAnswersPrintsQuestionnaire(t *testing.T) {
	home := t.TempDir()
	server := startServer(t)

	registerAndLogin(t, home, server)
	completeProfile(t, home, server)

	stdout, _, err := executeCLI(t, home, server, "assess", "run", "thyroid")
	require.NoError(t, err)
	assert.Contains(t, stdout, "neck_swelling")
	assert.Contains(t, stdout, "rate each symptom")
}

func TestAssessRunUnknownType(t *testing.T) {
	home := t.TempDir()
	server := startServer(t)

	registerAndLogin(t, home, server)
	completeProfile(t, home, server)

	_, _, err := executeCLI(t, home, server, "assess", "run", "arthritis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown assessment type")
}

func TestLoginMentionsRememberedDestination(t *testing.T) {
	home := t.TempDir()
	server := startServer(t)

	_, _, err := executeCLI(t, home, server, "register", "--email", "user@example.com", "--password", "password123")
	require.NoError(t, err)

	// The guarded attempt remembers where the visitor wanted to go.
	_, _, err = executeCLI(t, home, server, "history")
	require.Error(t, err)

	stdout, _, err := executeCLI(t, home, server, "login", "--email", "user@example.com", "--password", "password123")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed in as user@example.com")
	assert.Contains(t, stdout, "healify history")
}

func TestLogoutClearsSession(t *testing.T) {
	home := t.TempDir()
	server := startServer(t)

	registerAndLogin(t, home, server)

	stdout, _, err := executeCLI(t, home, server, "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed out")

	_, _, err = executeCLI(t, home, server, "profile", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sign in required")
}

func TestCredentialRejectionSignsOut(t *testing.T) {
	home := t.TempDir()
	server := startServer(t)

	registerAndLogin(t, home, server)

	// A backend with a rotated signing secret rejects the stored token.
	rotated := startServerWithSecret(t, "rotated-secret")
	_, _, err := executeCLI(t, home, rotated, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch history")

	// The rejection invalidated the whole session, so the guard now
	// redirects instead of reaching the network again.
	_, _, err = executeCLI(t, home, server, "profile", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sign in required")
}

func TestProfileSetRequiresAtLeastOneFlag(t *testing.T) {
	home := t.TempDir()
	server := startServer(t)

	registerAndLogin(t, home, server)

	_, _, err := executeCLI(t, home, server, "profile", "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no profile fields given")
}

func TestLoginWrongPasswordFails(t *testing.T) {
	home := t.TempDir()
	server := startServer(t)

	_, _, err := executeCLI(t, home, server, "register", "--email", "user@example.com", "--password", "password123")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, server, "login", "--email", "user@example.com", "--password", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sign in")
}

func startServer(t *testing.T) string {
	return startServerWithSecret(t, "cli-test-secret")
}

func startServerWithSecret(t *testing.T, secret string) string {
	t.Helper()

	server := httptest.NewServer(devserver.New(secret, ports.SystemClock{}).Handler())
	t.Cleanup(server.Close)
	return server.URL
}

func executeCLI(t *testing.T, home, serverURL string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("HEALIFY_API_URL", serverURL)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func registerAndLogin(t *testing.T, home, serverURL string) {
	t.Helper()

	_, _, err := executeCLI(t, home, serverURL, "register", "--email", "user@example.com", "--password", "password123")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, serverURL, "login", "--email", "user@example.com", "--password", "password123")
	require.NoError(t, err)
	require.Contains(t, stdout, "Signed in as user@example.com")
}

func completeProfile(t *testing.T, home, serverURL string) {
	t.Helper()

	_, _, err := executeCLI(t, home, serverURL,
		"profile", "set", "--age", "28", "--weight", "70", "--height", "175")
	require.NoError(t, err)
}
