// plot.go --  This file is part of goHF project.
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
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/MirzaevaIV/goHF/scf"
)

// Smallest value drawn on the logarithmic axis.
const plotFloor = 1e-16

// PlotConvergence draws |dE| and dRMS against the iteration number on a
// log scale. The format follows the extension of fname (png, svg, pdf, ...).
func PlotConvergence(fname string, history []scf.Step) error {
	if len(history) < 2 {
		return errors.New("report: need at least two SCF iterations to plot")
	}
	dE := make(plotter.XYs, 0, len(history)-1)
	dD := make(plotter.XYs, 0, len(history)-1)
	// The first step has no predecessor to compare with.
	for _, s := range history[1:] {
		if !isFinite(s.DeltaE) || !isFinite(s.DeltaD) {
			return fmt.Errorf("report: iteration %d has non-finite change", s.Iteration)
		}
		x := float64(s.Iteration)
		dE = append(dE, plotter.XY{X: x, Y: math.Max(math.Abs(s.DeltaE), plotFloor)})
		dD = append(dD, plotter.XY{X: x, Y: math.Max(s.DeltaD, plotFloor)})
	}

	p := plot.New()
	p.Title.Text = "SCF convergence"
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Change"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	for i, series := range []struct {
		name string
		xys  plotter.XYs
	}{{"|dE|", dE}, {"dRMS", dD}} {
		line, points, err := plotter.NewLinePoints(series.xys)
		if err != nil {
			return err
		}
		c := []color.Color{color.RGBA{B: 200, A: 255}, color.RGBA{R: 200, A: 255}}[i]
		line.Color = c
		points.Color = c
		p.Add(line, points)
		p.Legend.Add(series.name, line, points)
	}
	p.Legend.Top = true
	// A flat series would otherwise be widened linearly, below zero.
	if p.Y.Min == p.Y.Max {
		p.Y.Min /= 10
		p.Y.Max *= 10
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, fname)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
