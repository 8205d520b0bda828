// files.go --  This file is part of goHF project.
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Extensions tried, in order, when looking for an integral file.
var compressedExt = []string{"", ".gz", ".zst"}

type fileCloser struct {
	io.Reader
	closers []io.Closer
}

func (f *fileCloser) Close() error {
	var err error
	for _, c := range f.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens fname for reading, decompressing it on the fly when the name
// ends in .gz or .zst.
func Open(fname string) (io.ReadCloser, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(fname) {
	case ".gz":
		gz, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		return &fileCloser{gz, []io.Closer{gz, file}}, nil
	case ".zst":
		dec, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		return &fileCloser{dec, []io.Closer{dec.IOReadCloser(), file}}, nil
	}
	return file, nil
}

// find returns the first existing file among dir/base, dir/base.gz and
// dir/base.zst.
func find(dir, base string) (string, error) {
	for _, ext := range compressedExt {
		fname := filepath.Join(dir, base+ext)
		if _, err := os.Stat(fname); err == nil {
			return fname, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("%s: no %s file: %w", dir, base, fs.ErrNotExist)
}

// readLines reads the non-empty, non-comment lines of a file along with
// their 1-based line numbers.
func readLines(fname string) ([]string, []int, error) {
	r, err := Open(fname)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	var lines []string
	var numbers []int
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
		numbers = append(numbers, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", fname, err)
	}
	return lines, numbers, nil
}
