// molecule.go --  This file is part of goHF project.
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

// Molecule is what the SCF core needs to know about a molecule in a given
// basis. Coordinates are in bohr.
type Molecule interface {
	//Number of atomic orbitals
	BasisDimension() int

	ElectronCount() int

	//One 3-vector per atom, parallel to AtomicCharges
	AtomicCoordinates() [][3]float64

	AtomicCharges() []float64
}

// Integrals supplies the precomputed one- and two-electron integrals
// for a molecule in its basis.
type Integrals interface {
	Overlap() mat.Symmetric
	Kinetic() mat.Symmetric
	NuclearAttraction() mat.Symmetric
	ElectronRepulsion() *ERI
}
