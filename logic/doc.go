// Package logic offers boolean formulas over named variables, along with their
// two-level normal forms.
//
// Generic formulas are built with the Var, Not, And, Or, Implies, Eq and Xor connectors,
// or parsed from the usual textual notation of Karnaugh maps, where AND is implicit
// and negation is a postfix quote:
//
//	A'B + AB'(C + D)
//
// Sums of products are represented as an Expr, a list of Term values,
// and products of sums as a CNF, a list of Clause values. Both are formulas too.
//
// Assignments over a list of variables are numbered by minterm index: the first variable
// is the most significant bit of the index. MintermsToExpr, MaxtermsToCNF and TruthMinterms
// convert between formulas and lists of indices.
//
// Equivalence of formulas is decided with binary decision diagrams.
package logic
