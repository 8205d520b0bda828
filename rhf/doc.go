// doc.go --  This file is part of goHF project.
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

// Package rhf implements the numerical steps of a closed-shell
// (restricted) Hartree-Fock calculation on precomputed integrals:
// nuclear repulsion, core Hamiltonian, Fock build, the Roothaan
// generalized eigenproblem, density formation and the total energy.
//
// Every function takes its inputs read-only and returns freshly allocated
// results. The iteration to self-consistency lives in package scf.
package rhf
