package interpolation

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tuneinsight/lagrange/polynomial"
)

// PrintCoefficients writes the table of the coefficients on w, one row
// per degree in ascending order: row i holds the coefficient of x^i.
func PrintCoefficients(w io.Writer, coeffs polynomial.Coefficients) error {

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "Degree\tCoefficient"); err != nil {
		return err
	}

	n := len(coeffs)
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(tw, "%d\t%v\n", i, coeffs[n-1-i]); err != nil {
			return err
		}
	}

	return tw.Flush()
}
