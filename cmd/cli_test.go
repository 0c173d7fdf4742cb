package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pyme-segmenter/internal/application"
	"github.com/bnema/pyme-segmenter/internal/domain"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

// fakeOFS serves a fixed resource list and records every write.
type fakeOFS struct {
	t        *testing.T
	today    domain.Date
	mu       sync.Mutex
	writes   []recordedRequest
	calendar func(id string) string
}

func newFakeOFS(t *testing.T) (*fakeOFS, *httptest.Server) {
	t.Helper()

	fake := &fakeOFS{t: t, today: domain.DateOf(time.Now())}
	fake.calendar = func(string) string { return "{}" }
	server := httptest.NewServer(http.HandlerFunc(fake.serve))
	t.Cleanup(server.Close)
	return fake, server
}

func (f *fakeOFS) serve(w http.ResponseWriter, r *http.Request) {
	user, pass, ok := r.BasicAuth()
	if !ok || user != "plugin@acme" || pass != "s3cret" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	const base = "/rest/ofscCore/v1/resources"
	switch {
	case r.Method == http.MethodGet && r.URL.Path == base:
		_, _ = fmt.Fprint(w, f.resources())
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/workSchedules/calendarView"):
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, base+"/"), "/workSchedules/calendarView")
		_, _ = fmt.Fprint(w, f.calendar(id))
	case r.Method == http.MethodPost:
		body, err := io.ReadAll(r.Body)
		assert.NoError(f.t, err)
		f.mu.Lock()
		f.writes = append(f.writes, recordedRequest{Method: r.Method, Path: strings.TrimPrefix(r.URL.Path, base+"/"), Body: string(body)})
		f.mu.Unlock()
		_, _ = fmt.Fprint(w, "{}")
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeOFS) resources() string {
	return `{"items":[
		{"resourceId":"root","name":"Region Norte","status":"active","organization":"default","resourceType":"GR"},
		{"resourceId":"r1","name":"Ana","status":"active","organization":"default","parentResourceId":"root",
		 "workSkills":{"items":[{"workSkill":"INSTALL","ratio":80,"startDate":"2024-01-01"}]}},
		{"resourceId":"r2","name":"Beto","status":"active","organization":"default","parentResourceId":"root",
		 "workSkills":{"items":[{"workSkill":"REPAIR","ratio":100,"startDate":"2024-01-01"}]}},
		{"resourceId":"p1","name":"Pia","status":"active","organization":"default","parentResourceId":"root",
		 "workSkills":{"items":[{"workSkill":"PYME","ratio":100,"startDate":"2024-01-01"},{"workSkill":"INSTALL","ratio":50,"startDate":"2024-01-01"}]}},
		{"resourceId":"p2","name":"Pedro","status":"active","organization":"default","parentResourceId":"root",
		 "workSkills":{"items":[{"workSkill":"PYME_HOSP","ratio":100,"startDate":"2024-01-01"}]}},
		{"resourceId":"x","name":"Ximena","status":"inactive","organization":"default","parentResourceId":"root"}
	],"hasMore":false}`
}

func (f *fakeOFS) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.writes...)
}

func (f *fakeOFS) writesTo(suffix string) []recordedRequest {
	matched := make([]recordedRequest, 0)
	for _, req := range f.recorded() {
		if strings.HasSuffix(req.Path, suffix) {
			matched = append(matched, req)
		}
	}
	return matched
}

func TestVersionNeedsNoSession(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestTreeWithoutSessionFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "tree")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session file not found")
}

func TestTreeRendersResidentialPool(t *testing.T) {
	_, server := newFakeOFS(t)
	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, server.URL, "ana"))

	stdout, _, err := executeCLI(t, home, "tree")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Residencial (3)")
	assert.Contains(t, stdout, "Region Norte (root)")
	assert.Contains(t, stdout, "├─ [ ] Ana (r1)")
	assert.Contains(t, stdout, "└─ [ ] Beto (r2)")
	assert.NotContains(t, stdout, "Pia")
	assert.NotContains(t, stdout, "Ximena")
}

func TestTreeSearchAndJSONOutput(t *testing.T) {
	_, server := newFakeOFS(t)
	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, server.URL, "ana"))

	stdout, _, err := executeCLI(t, home, "tree", "--search", "beto", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"ID\": \"root\"")
	assert.Contains(t, stdout, "\"ID\": \"r2\"")
	assert.NotContains(t, stdout, "\"ID\": \"r1\"")
}

func TestPymeListsPoolWithBadges(t *testing.T) {
	_, server := newFakeOFS(t)
	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, server.URL, "ana"))

	stdout, _, err := executeCLI(t, home, "pyme")
	require.NoError(t, err)
	assert.Contains(t, stdout, "PYME (2)")
	assert.Contains(t, stdout, "Pia (p1) <PyME Multiskill>")
	assert.Contains(t, stdout, "Pedro (p2) <PyME Hospitalidad>")

	stdout, _, err = executeCLI(t, home, "pyme", "--group")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Recursos agrupados")
	assert.Contains(t, stdout, "Region Norte")
}

func TestUnauthorizedLoginHalts(t *testing.T) {
	fake, server := newFakeOFS(t)
	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, server.URL, "mallory"))

	stdout, _, err := executeCLI(t, home, "to-residential", "--resource", "p1", "--yes")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Contains(t, stdout, application.UnauthorizedMessage)
	assert.Empty(t, fake.recorded())
}

func TestToPymeUpdatesSkillsAndSchedules(t *testing.T) {
	fake, server := newFakeOFS(t)
	from := fake.today.AddDays(5)
	to := fake.today.AddDays(6)
	fake.calendar = func(id string) string {
		if id != "r1" {
			return "{}"
		}
		return fmt.Sprintf(`{%q:{"regular":{"recordType":"non-working","nonWorkingReason":"DÍA_LIBRE"}},%q:{"regular":{"recordType":"working"}}}`, from, to)
	}
	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, server.URL, "ana"))

	stdout, stderr, err := executeCLI(t, home,
		"to-pyme",
		"--resource", "r1",
		"--from", from.String(),
		"--to", to.String(),
		"--skill", "pyme_hosp",
		"--yes",
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stderr, "Cargando recursos...\n")
	assert.Contains(t, stdout, "Recursos movidos exitosamente a PYME : 1")
	assert.Contains(t, stdout, "schedule entries updated: 1")

	skills := fake.writesTo("/workSkills")
	require.Len(t, skills, 1)
	assert.Equal(t, "r1/workSkills", skills[0].Path)
	assert.JSONEq(t, fmt.Sprintf(`[
		{"workSkill":"INSTALL","ratio":80,"startDate":%q},
		{"workSkill":"PYME_HOSP","ratio":100,"startDate":%q,"endDate":%q}
	]`, to.AddDays(1), from, to), skills[0].Body)

	schedules := fake.writesTo("/workSchedules")
	require.Len(t, schedules, 1)
	assert.Contains(t, schedules[0].Body, `"comments":"Operaciones PyME API"`)
	assert.Contains(t, schedules[0].Body, `"shiftLabel":"09:00-16:00"`)
	assert.Contains(t, schedules[0].Body, fmt.Sprintf(`"startDate":%q`, from))
}

func TestToPymeDeclinedWritesNothing(t *testing.T) {
	fake, server := newFakeOFS(t)
	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, server.URL, "ana"))

	stdout, _, err := executeCLIWithInput(t, home, "n\n",
		"to-pyme",
		"--resource", "r1",
		"--resource", "r2",
		"--from", fake.today.AddDays(1).String(),
		"--to", fake.today.AddDays(2).String(),
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "[y/N]")
	assert.Contains(t, stdout, "Cancelado.")
	assert.Empty(t, fake.recorded())
}

func TestToPymeRejectsInvalidInput(t *testing.T) {
	fake, server := newFakeOFS(t)
	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, server.URL, "ana"))

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "range too long",
			args:    []string{"--resource", "r1", "--from", fake.today.AddDays(1).String(), "--to", fake.today.AddDays(20).String()},
			wantErr: domain.ErrInvalidRange,
		},
		{
			name:    "resource already in pyme",
			args:    []string{"--resource", "p1", "--from", fake.today.AddDays(1).String(), "--to", fake.today.AddDays(2).String()},
			wantErr: domain.ErrResourceNotFound,
		},
		{
			name:    "not a pool skill",
			args:    []string{"--resource", "r1", "--from", fake.today.AddDays(1).String(), "--to", fake.today.AddDays(2).String(), "--skill", "INSTALL"},
			wantErr: domain.ErrNotPoolMarker,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCLI(t, home, append([]string{"to-pyme", "--yes"}, tt.args...)...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Empty(t, fake.recorded())
}

func TestToPymeDryRunPrintsPlan(t *testing.T) {
	fake, server := newFakeOFS(t)
	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, server.URL, "ana"))
	from := fake.today.AddDays(3)
	to := fake.today.AddDays(4)

	stdout, _, err := executeCLI(t, home, "to-pyme", "--resource", "r2", "--from", from.String(), "--to", to.String(), "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "r2:\n")
	assert.Contains(t, stdout, fmt.Sprintf("  REPAIR ratio=100 %s..open\n", to.AddDays(1)))
	assert.Contains(t, stdout, fmt.Sprintf("  PYME ratio=100 %s..%s\n", from, to))
	assert.Empty(t, fake.recorded())
}

func TestToResidentialRestoresSkillsAndRevertsShifts(t *testing.T) {
	fake, server := newFakeOFS(t)
	shiftDay := fake.today.AddDays(1)
	fake.calendar = func(string) string {
		return fmt.Sprintf(`{%q:{"extra":{"recordType":"extra_shift","shiftLabel":"09:00-16:00","comments":"Operaciones PyME API"}}}`, shiftDay)
	}
	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, server.URL, "ana"))

	stdout, stderr, err := executeCLI(t, home, "to-residential", "--resource", "p1", "-y")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Recursos movidos exitosamente a Residencial : 1")

	skills := fake.writesTo("/workSkills")
	require.Len(t, skills, 1)
	assert.JSONEq(t, fmt.Sprintf(`[{"workSkill":"INSTALL","ratio":50,"startDate":%q}]`, fake.today), skills[0].Body)

	schedules := fake.writesTo("/workSchedules")
	require.Len(t, schedules, 1)
	assert.Contains(t, schedules[0].Body, `"nonWorkingReason":"DÍA_LIBRE"`)
	assert.Contains(t, schedules[0].Body, `"comments":"Retorno Residencial API"`)
}

func TestToResidentialWithoutRestorableSkills(t *testing.T) {
	fake, server := newFakeOFS(t)
	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home, server.URL, "ana"))

	stdout, _, err := executeCLI(t, home, "to-residential", "--resource", "p2", "--yes")
	require.ErrorIs(t, err, domain.ErrNoRestorableSkills)
	assert.Contains(t, stdout, application.NoRestorableSkillsMessage)
	assert.Empty(t, fake.recorded())
}

func TestSessionInitThenCheck(t *testing.T) {
	_, server := newFakeOFS(t)
	home := t.TempDir()
	t.Setenv("PSEG_TEST_SECRET", "s3cret")

	stdout, _, err := executeCLI(t, home,
		"session", "init",
		"--url", server.URL,
		"--client-id", "plugin@acme",
		"--client-secret-ref", "env:PSEG_TEST_SECRET",
		"--login", "ana",
		"--allowed-users", "bob;ana",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(home, ".pseg", "session.toml"))

	data, err := os.ReadFile(filepath.Join(home, ".pseg", "session.toml"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "s3cret")

	_, _, err = executeCLI(t, home, "session", "init", "--url", server.URL, "--client-id", "id", "--client-secret", "x", "--login", "ana", "--allowed-users", "ana")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	stdout, _, err = executeCLI(t, home, "session", "check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "residential: 3")
	assert.Contains(t, stdout, "pyme: 2")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, "", args...)
}

func executeCLIWithInput(t *testing.T, home, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("PSEG_TIMEZONE", "")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(input))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSessionFixture(home, serverURL, login string) error {
	configDir := filepath.Join(home, ".pseg")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	session := fmt.Sprintf(`version = 1

[credentials]
url = %q
client_id = "plugin@acme"
client_secret = "s3cret"

[user]
login = %q
allowed_users = "bob; ana ;carla"
`, serverURL, login)

	return os.WriteFile(filepath.Join(configDir, "session.toml"), []byte(session), 0o600)
}
