package timer_test

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

const rejectTemplate = `package reject

import (
	"nrftimer/sim"
	"nrftimer/timer"
)

func Use() {
%s
}
`

// rejectMarker tags the line the type checker has to complain about
const rejectMarker = "// rejected"

// typeCheck loads testdata/reject with body as the contents of Use
func typeCheck(t *testing.T, body string) (src string, errs []packages.Error) {
	t.Helper()
	if testing.Short() {
		t.Skip("type checking snippets runs the go command")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}

	dir, err := filepath.Abs(filepath.Join("testdata", "reject"))
	require.NoError(t, err)

	src = fmt.Sprintf(rejectTemplate, body)
	cfg := &packages.Config{
		Mode:    packages.NeedName | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:     dir,
		Overlay: map[string][]byte{filepath.Join(dir, "reject.go"): []byte(src)},
	}
	pkgs, err := packages.Load(cfg, ".")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	return src, pkgs[0].Errors
}

func markerLine(src string) int {
	for i, line := range strings.Split(src, "\n") {
		if strings.Contains(line, rejectMarker) {
			return i + 1
		}
	}
	return 0
}

// errorLine extracts the line from a "file:line:col" position
func errorLine(pos string) int {
	parts := strings.Split(pos, ":")
	if len(parts) < 3 {
		return 0
	}
	n, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return 0
	}
	return n
}

// typeErrors keeps the type checker's errors. go list reports the same
// failure again without a position.
func typeErrors(errs []packages.Error) []packages.Error {
	var out []packages.Error
	for _, e := range errs {
		if e.Kind == packages.TypeError {
			out = append(out, e)
		}
	}
	return out
}

func TestCompileAccepted(t *testing.T) {
	_, errs := typeCheck(t, `
	raw := timer.NewExtended(sim.NewExtended())
	tm := timer.SetPrescaler[timer.P4](timer.SetWidth[timer.W16](raw.IntoTimer()))
	tm5 := timer.EnableInterrupt5(tm)
	r := timer.Start(tm5)
	timer.CompareAgainst5(r, 1000)
	timer.Unpend4(r)
	_ = timer.Capture3(r)
	r.Reset()
	_ = timer.DisableInterrupt5(timer.Stop(r))

	c := timer.Start(timer.NewBasic(sim.NewBasic()).IntoCounter())
	timer.Tick(c)
	_ = timer.EnableInterrupt3(c)`)
	assert.Empty(t, errs)
}

func TestCompileRejected(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{
			name: "start twice",
			body: `
	c := timer.NewBasic(sim.NewBasic()).IntoCounter()
	_ = timer.Start(timer.Start(c)) ` + rejectMarker,
		},
		{
			name: "stop while stopped",
			body: `
	c := timer.NewBasic(sim.NewBasic()).IntoCounter()
	_ = timer.Stop(c) ` + rejectMarker,
		},
		{
			name: "prescaler on counter",
			body: `
	c := timer.NewBasic(sim.NewBasic()).IntoCounter()
	_ = timer.SetPrescaler[timer.P3](c) ` + rejectMarker,
		},
		{
			name: "prescaler while running",
			body: `
	r := timer.Start(timer.NewBasic(sim.NewBasic()).IntoTimer())
	_ = timer.SetPrescaler[timer.P3](r) ` + rejectMarker,
		},
		{
			name: "width while running",
			body: `
	r := timer.Start(timer.NewExtended(sim.NewExtended()).IntoCounter())
	_ = timer.SetWidth[timer.W16](r) ` + rejectMarker,
		},
		{
			name: "tick in timer mode",
			body: `
	r := timer.Start(timer.NewBasic(sim.NewBasic()).IntoTimer())
	timer.Tick(r) ` + rejectMarker,
		},
		{
			name: "tick while stopped",
			body: `
	c := timer.NewBasic(sim.NewBasic()).IntoCounter()
	timer.Tick(c) ` + rejectMarker,
		},
		{
			name: "enable twice",
			body: `
	c := timer.NewBasic(sim.NewBasic()).IntoTimer()
	_ = timer.EnableInterrupt2(timer.EnableInterrupt2(c)) ` + rejectMarker,
		},
		{
			name: "disable while disabled",
			body: `
	c := timer.NewExtended(sim.NewExtended()).IntoTimer()
	_ = timer.DisableInterrupt4(c) ` + rejectMarker,
		},
		{
			name: "channel 4 on 4 channel timer",
			body: `
	c := timer.NewBasic(sim.NewBasic()).IntoCounter()
	timer.Unpend4(c) ` + rejectMarker,
		},
		{
			name: "channel 5 interrupt on 4 channel timer",
			body: `
	c := timer.NewBasic(sim.NewBasic()).IntoTimer()
	_ = timer.EnableInterrupt5(c) ` + rejectMarker,
		},
		{
			name: "handle type changes on transition",
			body: `
	c := timer.NewBasic(sim.NewBasic()).IntoCounter()
	c = timer.SetWidth[timer.W8](c) ` + rejectMarker,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src, errs := typeCheck(t, tc.body)
			typeErrs := typeErrors(errs)
			require.NotEmpty(t, typeErrs, "program was accepted:\n%s", src)

			want := markerLine(src)
			for _, e := range typeErrs {
				assert.Equal(t, want, errorLine(e.Pos), "unexpected error: %s", e)
			}
		})
	}
}
