// nuclear.go --  This file is part of goHF project.
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

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// NuclearRepulsion returns sum_{i<j} Zi*Zj/|Ri-Rj| over all atom pairs.
// Coincident nuclei give +Inf (or NaN for two zero charges).
func NuclearRepulsion(coords [][3]float64, charges []float64) (float64, error) {
	if len(coords) != len(charges) {
		return 0, fmt.Errorf("%d coordinates for %d charges: %w", len(coords), len(charges), ErrDimensionMismatch)
	}
	res := 0.0
	for i := range coords {
		for j := i + 1; j < len(coords); j++ {
			res += charges[i] * charges[j] / floats.Distance(coords[i][:], coords[j][:], 2)
		}
	}
	return res, nil
}

func NucNuc(m Molecule) (float64, error) {
	return NuclearRepulsion(m.AtomicCoordinates(), m.AtomicCharges())
}
