package catalog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger writes through t.Log so output only shows on failure or -v.
func newTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ── Registry ─────────────────────────────────────────────────────────────────

// TestAllOrderAndCompleteness checks run order and that every entry carries
// a title, a summary, teaching notes and a runnable demo.
func TestAllOrderAndCompleteness(t *testing.T) {
	want := []string{
		"abstract-factory",
		"builder",
		"factory-method",
		"prototype",
		"singleton",
		"adapter",
	}
	assert.Equal(t, want, Names())

	for _, d := range All() {
		assert.NotEmpty(t, d.Title, d.Name)
		assert.NotEmpty(t, d.Summary, d.Name)
		assert.NotEmpty(t, d.Intent, d.Name)
		assert.NotEmpty(t, d.Pros, d.Name)
		assert.NotEmpty(t, d.Cons, d.Name)
		assert.NotEmpty(t, d.Roles, d.Name)
		assert.NotNil(t, d.Run, d.Name)
	}
}

// TestAllReturnsCopy makes sure callers cannot edit the registry.
func TestAllReturnsCopy(t *testing.T) {
	got := All()
	got[0].Name = "changed"

	assert.Equal(t, "abstract-factory", All()[0].Name)
}

// TestLookup covers exact, case-insensitive and unknown names.
func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    string
		wantErr bool
	}{
		{name: "exact", query: "builder", want: "builder"},
		{name: "case insensitive", query: "Adapter", want: "adapter"},
		{name: "unknown", query: "visitor", wantErr: true},
		{name: "empty", query: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Lookup(tt.query)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownDemo)
				assert.Contains(t, err.Error(), `"`+tt.query+`"`)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Name)
		})
	}
}

// TestFamilies checks the grouping into creational and structural.
func TestFamilies(t *testing.T) {
	assert.Equal(t, []Family{Creational, Structural}, Families())
	assert.Len(t, ByFamily(Creational), 5)

	structural := ByFamily(Structural)
	require.Len(t, structural, 1)
	assert.Equal(t, "adapter", structural[0].Name)

	assert.Empty(t, ByFamily("behavioral"))
}

// ── Running ──────────────────────────────────────────────────────────────────

// TestSectionBanner checks the banner text on a non-terminal writer.
func TestSectionBanner(t *testing.T) {
	var buf bytes.Buffer
	Section(&buf, "Builder")

	assert.True(t, strings.HasPrefix(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "━━━ Builder ━━━")
}

// TestRunnerRunsUnderBanners verifies that demos run in the order given, each
// under its own banner, and write to the runner's writer.
func TestRunnerRunsUnderBanners(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(&buf, newTestLogger(t))

	adapterDemo, err := Lookup("adapter")
	require.NoError(t, err)
	prototypeDemo, err := Lookup("prototype")
	require.NoError(t, err)

	r.Run(adapterDemo, prototypeDemo)

	out := buf.String()
	adapterAt := strings.Index(out, adapterDemo.Title)
	prototypeAt := strings.Index(out, prototypeDemo.Title)
	require.GreaterOrEqual(t, adapterAt, 0)
	require.Greater(t, prototypeAt, adapterAt)

	assert.Contains(t, out, "110V 전력 공급 중 => 220V 전력 공급 중\n")
	assert.Contains(t, out, "Document: Clone\n")
}

// TestRunnerSingletonTranscript checks that the whole singleton transcript,
// construction line included, lands on the runner's writer. This is the only
// test in the package that touches the singleton, so it is the first access.
func TestRunnerSingletonTranscript(t *testing.T) {
	var buf bytes.Buffer

	d, err := Lookup("singleton")
	require.NoError(t, err)
	NewRunner(&buf, nil).Run(d)

	assert.Contains(t, buf.String(), d.Title)
	assert.True(t, strings.HasSuffix(buf.String(), "싱글톤 인스턴스 생성\ntrue\n"), buf.String())
}

// TestNewRunnerNilLogger ensures a nil logger is replaced.
func TestNewRunnerNilLogger(t *testing.T) {
	r := NewRunner(&bytes.Buffer{}, nil)
	require.NotNil(t, r.Logger)
}

// ── Presentation ─────────────────────────────────────────────────────────────

// TestTable checks that the listing names every demo and family.
func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, All())

	out := buf.String()
	for _, name := range Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "creational")
	assert.Contains(t, out, "structural")
}

// TestDescribe verifies that every piece of a demo's notes is printed.
func TestDescribe(t *testing.T) {
	for _, d := range All() {
		t.Run(d.Name, func(t *testing.T) {
			var buf bytes.Buffer
			Describe(&buf, d)

			out := buf.String()
			assert.Contains(t, out, d.Title)
			assert.Contains(t, out, d.Intent)
			for _, p := range d.Pros {
				assert.Contains(t, out, "+ "+p)
			}
			for _, c := range d.Cons {
				assert.Contains(t, out, "- "+c)
			}
			for _, r := range d.Roles {
				assert.Contains(t, out, r.Name)
			}

			prosAt := strings.Index(out, "\nPros\n")
			consAt := strings.Index(out, "\nCons\n")
			rolesAt := strings.Index(out, "\nRoles\n")
			require.GreaterOrEqual(t, prosAt, 0)
			assert.True(t, prosAt < consAt && consAt < rolesAt, "sections out of order")
		})
	}
}
