package modmath

import (
	"fmt"

	"ciphercrypt/internal/cipher"
)

// Matrix is an immutable square integer matrix stored in row-major order.
// The matrix itself carries no modulus; every operation takes m explicitly
// and returns values in [0, m-1].
type Matrix struct {
	n     int
	cells []int
}

// New builds a Matrix from rows. It fails with ErrInvalidKey if the rows do
// not form a non-empty square.
func New(rows [][]int) (Matrix, error) {
	n := len(rows)
	if n == 0 {
		return Matrix{}, fmt.Errorf("empty matrix: %w", cipher.ErrInvalidKey)
	}
	cells := make([]int, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return Matrix{}, fmt.Errorf("matrix is %dx%d, not square: %w", n, len(row), cipher.ErrInvalidKey)
		}
		cells = append(cells, row...)
	}
	return Matrix{n: n, cells: cells}, nil
}

// NewFromSlice builds an n x n Matrix from a flat row-major slice. It fails
// with ErrInvalidKey unless len(cells) == n*n.
func NewFromSlice(n int, cells []int) (Matrix, error) {
	if n < 1 || len(cells) != n*n {
		return Matrix{}, fmt.Errorf("%d cells cannot fill a %dx%d matrix: %w", len(cells), n, n, cipher.ErrInvalidKey)
	}
	cp := make([]int, len(cells))
	copy(cp, cells)
	return Matrix{n: n, cells: cp}, nil
}

// Dim returns the matrix dimension n.
func (mx Matrix) Dim() int { return mx.n }

// At returns the element at row i, column j.
func (mx Matrix) At(i, j int) int { return mx.cells[i*mx.n+j] }

// Row returns a copy of row i.
func (mx Matrix) Row(i int) []int {
	row := make([]int, mx.n)
	copy(row, mx.cells[i*mx.n:(i+1)*mx.n])
	return row
}

// minor returns the submatrix with row i and column j removed.
func (mx Matrix) minor(i, j int) Matrix {
	sub := make([]int, 0, (mx.n-1)*(mx.n-1))
	for r := 0; r < mx.n; r++ {
		if r == i {
			continue
		}
		for c := 0; c < mx.n; c++ {
			if c == j {
				continue
			}
			sub = append(sub, mx.At(r, c))
		}
	}
	return Matrix{n: mx.n - 1, cells: sub}
}

// Det returns the determinant modulo m, via cofactor expansion along the
// first row. The signed accumulation happens in plain integers and is
// normalized once at the end, so negative cofactors cannot leak out.
func (mx Matrix) Det(m int) int {
	if mx.n == 1 {
		return Mod(mx.cells[0], m)
	}
	det := 0
	sign := 1
	for j := 0; j < mx.n; j++ {
		det += sign * mx.At(0, j) * mx.minor(0, j).Det(m)
		sign = -sign
	}
	return Mod(det, m)
}

// Adjugate returns the transposed cofactor matrix with every entry reduced
// modulo m.
func (mx Matrix) Adjugate(m int) Matrix {
	if mx.n == 1 {
		return Matrix{n: 1, cells: []int{Mod(1, m)}}
	}
	adj := make([]int, mx.n*mx.n)
	for i := 0; i < mx.n; i++ {
		for j := 0; j < mx.n; j++ {
			cof := mx.minor(i, j).Det(m)
			if (i+j)%2 == 1 {
				cof = -cof
			}
			// Transposed: the (i,j) cofactor lands at (j,i).
			adj[j*mx.n+i] = Mod(cof, m)
		}
	}
	return Matrix{n: mx.n, cells: adj}
}

// Inverse returns the matrix inverse modulo m, built as
// modInverse(det) * adjugate. It fails with ErrNotInvertible when the
// determinant shares a factor with m.
func (mx Matrix) Inverse(m int) (Matrix, error) {
	detInv, err := ModInverse(mx.Det(m), m)
	if err != nil {
		return Matrix{}, err
	}
	adj := mx.Adjugate(m)
	inv := make([]int, len(adj.cells))
	for i, c := range adj.cells {
		inv[i] = Mod(detInv*c, m)
	}
	return Matrix{n: mx.n, cells: inv}, nil
}

// MulVec returns the matrix-vector product modulo m. Each row sum is
// accumulated in full and reduced once, matching row-sum semantics exactly.
func (mx Matrix) MulVec(vec []int, m int) ([]int, error) {
	if len(vec) != mx.n {
		return nil, fmt.Errorf("modmath: vector length %d does not match dimension %d", len(vec), mx.n)
	}
	out := make([]int, mx.n)
	for i := 0; i < mx.n; i++ {
		sum := 0
		for j := 0; j < mx.n; j++ {
			sum += mx.At(i, j) * vec[j]
		}
		out[i] = Mod(sum, m)
	}
	return out, nil
}
