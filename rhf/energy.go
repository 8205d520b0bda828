// energy.go --  This file is part of goHF project.
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
package rhf

import "gonum.org/v1/gonum/mat"

// ElectronicEnergy returns 1/2 Σ_μν D[μ,ν] (H[μ,ν] + F[μ,ν]).
func ElectronicEnergy(f, h, d mat.Matrix) (float64, error) {
	n, _ := d.Dims()
	if n == 0 {
		return 0, ErrZeroBasis
	}
	for _, m := range []struct {
		name string
		mat.Matrix
	}{{"density matrix", d}, {"core Hamiltonian", h}, {"Fock matrix", f}} {
		if err := checkSquare(m.name, m.Matrix, n); err != nil {
			return 0, err
		}
	}
	res := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res += d.At(i, j) * (h.At(i, j) + f.At(i, j))
		}
	}
	return 0.5 * res, nil
}

// TotalEnergy is the electronic energy plus the nuclear repulsion enuc.
func TotalEnergy(f, h, d mat.Matrix, enuc float64) (float64, error) {
	e, err := ElectronicEnergy(f, h, d)
	if err != nil {
		return 0, err
	}
	return e + enuc, nil
}
