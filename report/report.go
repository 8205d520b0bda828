// report.go --  This file is part of goHF project.
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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/MirzaevaIV/goHF/scf"
)

func Banner(w io.Writer) {
	fmt.Fprint(w, "\n              __  __  ____      |\n             /\\ \\/\\ \\/\\  __\\    |"+
		" Author: Mirzaeva Irina Valerievna\n   __     ___\\ \\ \\_\\ \\ \\ \\_/    |"+
		" Restricted Hartree-Fock SCF on precomputed integrals\n"+
		" /'_ `\\  / __`\\ \\  _  \\ \\  _\\   | Nikolaev Institute of Inorganic Chemistry SB RAS"+
		" (http://niic.nsc.ru/)\n/\\ \\L\\ \\/\\ \\L\\ \\ \\ \\ \\ \\ \\ \\/   | Novosibirsk, Russia"+
		"\n\\ \\____ \\ \\____/\\ \\_\\ \\_\\ \\_\\   | HF stands for Himicheskaya Fizika\n \\/___L\\"+
		" \\/___/  \\/_/\\/_/\\/_/   | Have Fun!!!\n   /\\____/                      |\n   \\_/__/                       |\n\n")
}

func Delimiter() string {
	return strings.Repeat("-", 70)
}

// FormatMatrix renders m with one row per line, like mat.Formatted with
// a prefix.
func FormatMatrix(m mat.Matrix) string {
	fa := mat.Formatted(m, mat.Prefix("    "), mat.Squeeze())
	return fmt.Sprintf("    %.8f\n", fa)
}

// WriteMatrix writes m as plain text, %12.6f per element, one row per
// line.
func WriteMatrix(fname string, m mat.Matrix) error {
	r, c := m.Dims()
	var sb strings.Builder
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			fmt.Fprintf(&sb, "%12.6f", m.At(i, j))
		}
		sb.WriteString("\n")
	}
	return os.WriteFile(fname, []byte(sb.String()), 0644)
}

// Dump writes the final matrices of a calculation into dir.
func Dump(dir string, res *scf.Result) error {
	if res.Fock == nil || len(res.MOEnergies) == 0 {
		return errors.New("report: no SCF iterate to dump")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		m    mat.Matrix
	}{
		{"hcore.txt", res.Hcore},
		{"fock.txt", res.Fock},
		{"mo_coeffs.txt", res.MOCoeffs},
		{"density.txt", res.Density},
	} {
		if err := WriteMatrix(filepath.Join(dir, f.name), f.m); err != nil {
			return err
		}
	}
	mo := mat.NewVecDense(len(res.MOEnergies), res.MOEnergies)
	return WriteMatrix(filepath.Join(dir, "mo_energies.txt"), mo)
}

// Iterations writes the SCF history as a table.
func Iterations(w io.Writer, history []scf.Step) {
	fmt.Fprintf(w, "%6s %22s %14s %14s\n", "Iter", "Energy, a.u.", "dE", "dRMS")
	for _, s := range history {
		fmt.Fprintf(w, "%6d %22.12f %14.4e %14.4e\n", s.Iteration, s.Energy, s.DeltaE, s.DeltaD)
	}
}

// Orbitals writes the MO energies, marking the nOcc lowest as doubly
// occupied.
func Orbitals(w io.Writer, energies []float64, nOcc int) {
	fmt.Fprintf(w, "%6s %5s %18s\n", "MO", "Occ", "Energy, a.u.")
	for i, e := range energies {
		occ := 0
		if i < nOcc {
			occ = 2
		}
		fmt.Fprintf(w, "%6d %5d %18.10f\n", i+1, occ, e)
	}
}

// MemStats writes the heap usage of the running process.
func MemStats(w io.Writer) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	fmt.Fprintf(w, "Alloc: %d bytes\n", ms.Alloc)
	fmt.Fprintf(w, "TotalAlloc: %d bytes\n", ms.TotalAlloc)
	fmt.Fprintf(w, "HeapAlloc: %d bytes\n", ms.HeapAlloc)
	fmt.Fprintf(w, "HeapSys: %d bytes\n", ms.HeapSys)
}
