package sparse

import "github.com/nodewave/circsim/cplx"

// MatVec computes A·v for the sparse matrix described by values laid
// out in CSR form (rowPointers/columnIndices/values) and a dense
// vector v of length N = len(rowPointers)-1. The result follows the
// CSR layout directly: (A·v)[i] = Σ_{k in row i} values[k]·v[columnIndices[k]].
// Complexity: O(nnz).
func MatVec(values []cplx.Z, columnIndices []int, rowPointers []int, v []cplx.Z) []cplx.Z {
	rows := len(rowPointers) - 1
	out := make([]cplx.Z, rows)

	for i := 0; i < rows; i++ {
		var sum cplx.Z
		for k := rowPointers[i]; k < rowPointers[i+1]; k++ {
			sum = sum.Add(values[k].Mul(v[columnIndices[k]]))
		}
		out[i] = sum
	}

	return out
}
