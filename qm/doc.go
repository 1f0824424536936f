// Package qm minimizes boolean functions into two-level normal forms.
//
// Functions are given either as formulas or as lists of minterms, possibly with don't cares.
// Prime implicants are generated with the Quine-McCluskey method. The covering step then
// selects essential prime implicants first, and solves what remains of the covering problem
// exactly: ExactCover searches the fewest implicants covering the remaining minterms, and among
// those the ones with the fewest literals.
//
// A minimal product of sums is obtained as the dual of the minimal sum of products of the
// complement of the function. Don't cares are available to both forms.
//
// For instance, the following code:
//
//	vars, _ := logic.Variables(4)
//	sop, _ := qm.New().BuildFromMinterms(vars, []int{0, 2, 4, 6, 8, 10, 12, 14}, nil)
//	fmt.Println(sop)
//
// prints "D'".
package qm
