package interpolation

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/lagrange/polynomial"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestPrintCoefficients(t *testing.T) {

	t.Run("Table", func(t *testing.T) {
		buf := new(bytes.Buffer)
		require.NoError(t, PrintCoefficients(buf, polynomial.Coefficients{1, 0, -4}))
		require.Equal(t, "Degree  Coefficient\n0       -4\n1       0\n2       1\n", buf.String())
	})

	t.Run("Empty", func(t *testing.T) {
		buf := new(bytes.Buffer)
		require.NoError(t, PrintCoefficients(buf, polynomial.Coefficients{}))
		require.Equal(t, "Degree  Coefficient\n", buf.String())
	})

	t.Run("WriteError", func(t *testing.T) {
		require.Error(t, PrintCoefficients(failingWriter{}, polynomial.Coefficients{1, 2}))

		itp := newTestInterpolator(t, squares).WithOutput(failingWriter{})
		_, err := itp.Compute(0, true)
		require.Error(t, err)
	})
}
