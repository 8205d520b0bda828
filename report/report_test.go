// report_test.go --  This file is part of goHF project.
// Mirzaeva Irina, 2023
//
//	goHF is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------
package report

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/MirzaevaIV/goHF/scf"
)

func TestWriteMatrix(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "m.txt")
	m := mat.NewDense(2, 3, []float64{1, -2.5, 0, 0.1234567, 10, -0.000001})
	require.NoError(t, WriteMatrix(fname, m))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	want := "    1.000000   -2.500000    0.000000\n" +
		"    0.123457   10.000000   -0.000001\n"
	assert.Equal(t, want, string(data))
}

func TestFormatMatrix(t *testing.T) {
	s := FormatMatrix(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "1.00000000")
	assert.Contains(t, lines[1], "4.00000000")
}

func TestDelimiter(t *testing.T) {
	assert.Len(t, Delimiter(), 70)
	assert.Equal(t, "", strings.Trim(Delimiter(), "-"))
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	Banner(&buf)
	assert.Contains(t, buf.String(), "Have Fun!!!")
}

func TestMemStats(t *testing.T) {
	var buf bytes.Buffer
	MemStats(&buf)
	assert.Contains(t, buf.String(), "HeapAlloc: ")
	assert.Equal(t, 4, strings.Count(buf.String(), "\n"))
}

func TestOrbitals(t *testing.T) {
	var buf bytes.Buffer
	Orbitals(&buf, []float64{-1.5, -0.5, 0.25}, 2)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"1", "2", "-1.5000000000"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"3", "0", "0.2500000000"}, strings.Fields(lines[3]))
}

func TestIterations(t *testing.T) {
	var buf bytes.Buffer
	Iterations(&buf, []scf.Step{{Iteration: 1, Energy: -1}, {Iteration: 2, Energy: -1.5, DeltaE: -0.5, DeltaD: 0.01}})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	f := strings.Fields(lines[2])
	assert.Equal(t, []string{"2", "-1.500000000000", "-5.0000e-01", "1.0000e-02"}, f)
}

func TestDump(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	res := &scf.Result{
		Hcore:      mat.NewSymDense(2, []float64{-1, 0.5, 0.5, -0.5}),
		Fock:       mat.NewDense(2, 2, []float64{-0.8, 0.4, 0.4, -0.2}),
		MOCoeffs:   mat.NewDense(2, 2, []float64{1, 0, 0, 1}),
		Density:    mat.NewSymDense(2, []float64{2, 0, 0, 0}),
		MOEnergies: []float64{-0.9, -0.1},
	}
	require.NoError(t, Dump(dir, res))
	for _, name := range []string{"hcore.txt", "fock.txt", "mo_coeffs.txt", "density.txt", "mo_energies.txt"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	data, err := os.ReadFile(filepath.Join(dir, "mo_energies.txt"))
	require.NoError(t, err)
	assert.Equal(t, "   -0.900000\n   -0.100000\n", string(data))

	assert.Error(t, Dump(dir, &scf.Result{}))
}

func TestPlotConvergence(t *testing.T) {
	history := []scf.Step{
		{Iteration: 1, Energy: -70, DeltaE: -70, DeltaD: 0.5},
		{Iteration: 2, Energy: -74.9, DeltaE: -4.9, DeltaD: 0.05},
		{Iteration: 3, Energy: -74.94, DeltaE: -0.04, DeltaD: 1e-4},
		// exact zero is clamped rather than dropped
		{Iteration: 4, Energy: -74.94, DeltaE: 0, DeltaD: 0},
	}
	fname := filepath.Join(t.TempDir(), "scf.svg")
	require.NoError(t, PlotConvergence(fname, history))
	info, err := os.Stat(fname)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, PlotConvergence(fname, history[:1]))
}

func TestPlotConvergenceFlat(t *testing.T) {
	// a system without electrons never changes
	history := []scf.Step{
		{Iteration: 1, Energy: 8, DeltaE: 8},
		{Iteration: 2, Energy: 8},
		{Iteration: 3, Energy: 8},
	}
	dir := t.TempDir()
	for _, name := range []string{"flat.png", "flat.svg"} {
		fname := filepath.Join(dir, name)
		require.NotPanics(t, func() {
			assert.NoError(t, PlotConvergence(fname, history))
		})
		assert.FileExists(t, fname)
	}
	require.NotPanics(t, func() {
		assert.NoError(t, PlotConvergence(filepath.Join(dir, "one.png"), history[:2]))
	})
}

func TestPlotConvergenceNonFinite(t *testing.T) {
	history := []scf.Step{
		{Iteration: 1, Energy: -1, DeltaE: -1},
		{Iteration: 2, Energy: math.NaN(), DeltaE: math.NaN(), DeltaD: 0.1},
	}
	assert.Error(t, PlotConvergence(filepath.Join(t.TempDir(), "nan.png"), history))
}
