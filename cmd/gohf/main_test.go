// main_test.go --  This file is part of goHF project.
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
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MirzaevaIV/goHF/scf"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// lastFloat returns the number that follows marker on the last line
// containing it.
func lastFloat(t *testing.T, text, marker string) float64 {
	t.Helper()
	idx := strings.LastIndex(text, marker)
	require.GreaterOrEqual(t, idx, 0, "%q not found", marker)
	fields := strings.Fields(text[idx+len(marker):])
	require.NotEmpty(t, fields)
	v, err := strconv.ParseFloat(fields[0], 64)
	require.NoError(t, err)
	return v
}

func writeCalc(t *testing.T, extra string) string {
	t.Helper()
	ints, err := filepath.Abs("../../integrals/testdata/h2o_sto3g")
	require.NoError(t, err)
	fname := filepath.Join(t.TempDir(), "water.yaml")
	data := fmt.Sprintf("integrals: %s\n%s", ints, extra)
	require.NoError(t, os.WriteFile(fname, []byte(data), 0644))
	return fname
}

func TestRunWater(t *testing.T) {
	fname := writeCalc(t, "plot: scf.svg\ndump: results\n")
	dir := filepath.Dir(fname)

	stdout, err := execute(t, "run", "--mem", fname)
	require.NoError(t, err)
	assert.InDelta(t, -74.942079928192, lastFloat(t, stdout, "Final total energy = "), 1e-8)

	out, err := os.ReadFile(filepath.Join(dir, "water.out"))
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "Starting goHF...")
	assert.Contains(t, text, "Have Fun!!!")
	assert.Contains(t, text, "Basis functions: 7, electrons: 10, charge: 0")
	assert.Contains(t, text, "HeapAlloc: ")
	assert.Contains(t, text, "Exiting goHF...")
	assert.InDelta(t, 8.00236706181077, lastFloat(t, text, "Nuclei Repulsion Energy: "), 1e-12)
	assert.InDelta(t, -74.942079928192, lastFloat(t, text, "Final total energy = "), 1e-8)
	// iteration records are only logged with --verbose
	assert.NotContains(t, text, "scf iteration")

	assert.FileExists(t, filepath.Join(dir, "scf.svg"))
	for _, name := range []string{"hcore.txt", "fock.txt", "mo_coeffs.txt", "density.txt", "mo_energies.txt"} {
		assert.FileExists(t, filepath.Join(dir, "results", name))
	}
}

func TestRunVerbose(t *testing.T) {
	fname := writeCalc(t, "output: verbose.out\nsolver: lowdin\n")
	_, err := execute(t, "run", "-v", fname)
	require.NoError(t, err)

	out, err := os.ReadFile(filepath.Join(filepath.Dir(fname), "verbose.out"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "scf iteration")
	assert.Contains(t, string(out), "scf converged")
	assert.Contains(t, string(out), "Final Fock matrix:")
	assert.Contains(t, string(out), "Final density matrix:")
	// the calculation file is echoed verbatim
	assert.Contains(t, string(out), "output: verbose.out\nsolver: lowdin\n")
}

func TestRunNoElectrons(t *testing.T) {
	// the water nuclei stripped of all ten electrons: the energy is flat
	fname := writeCalc(t, "charge: 10\nplot: flat.png\n")
	var err error
	require.NotPanics(t, func() { _, err = execute(t, "run", fname) })
	require.NoError(t, err)

	dir := filepath.Dir(fname)
	assert.FileExists(t, filepath.Join(dir, "flat.png"))
	out, rerr := os.ReadFile(filepath.Join(dir, "water.out"))
	require.NoError(t, rerr)
	assert.Contains(t, string(out), "electrons: 0, charge: 10")
	assert.NotContains(t, string(out), "Cannot plot")
	assert.InDelta(t, 8.00236706181077, lastFloat(t, string(out), "Final total energy = "), 1e-12)
}

func TestRunNotConverged(t *testing.T) {
	fname := writeCalc(t, "scf:\n  max_steps: 2\n")
	_, err := execute(t, "run", fname)
	assert.ErrorIs(t, err, scf.ErrNotConverged)

	out, rerr := os.ReadFile(filepath.Join(filepath.Dir(fname), "water.out"))
	require.NoError(t, rerr)
	assert.Contains(t, string(out), "WARNING: ")
	assert.Contains(t, string(out), "Final total energy = ")
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	fname := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(fname, []byte("integrals: nowhere\n"), 0644))
	_, err = execute(t, "run", fname)
	assert.Error(t, err)

	_, err = execute(t, "run")
	assert.Error(t, err)
}

func TestEnuc(t *testing.T) {
	stdout, err := execute(t, "enuc", "../../integrals/testdata/h2o_sto3g/geom.dat")
	require.NoError(t, err)
	assert.InDelta(t, 8.00236706181077, lastFloat(t, stdout, "Nuclei Repulsion Energy: "), 1e-11)

	fname := filepath.Join(t.TempDir(), "h2.dat")
	require.NoError(t, os.WriteFile(fname, []byte("2\nH 0 0 0\nH 0 0 0.74\n"), 0644))
	stdout, err = execute(t, "enuc", "--angstrom", fname)
	require.NoError(t, err)
	assert.InDelta(t, 0.52917720859/0.74, lastFloat(t, stdout, "Nuclei Repulsion Energy: "), 1e-11)
}
