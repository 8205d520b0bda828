// elements.go --  This file is part of goHF project.
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
package integrals

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Bohr radius in angstrom
const aB = 0.52917720859

var symbols = []string{
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
}

// AtomicNumber returns the nuclear charge for an element symbol, or 0 if
// the symbol is unknown. The lookup is case-insensitive.
func AtomicNumber(symb string) int {
	if symb == "" {
		return 0
	}
	symb = strings.ToUpper(symb[:1]) + strings.ToLower(symb[1:])
	return slices.Index(symbols, symb) + 1
}

func Symbol(z int) string {
	if z < 1 || z > len(symbols) {
		return "X"
	}
	return symbols[z-1]
}
