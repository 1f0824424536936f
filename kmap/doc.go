/*
Package kmap lays boolean functions of 2 to 4 variables out on Karnaugh maps
and groups their cells.

Cells are ordered along each axis so that neighbours, including across the edges
of the map, differ in exactly one variable:

	         AB=00 AB=01 AB=11 AB=10
	CD=00      0     4    12     8
	CD=01      1     5    13     9
	CD=11      3     7    15    11
	CD=10      2     6    14    10

A group is a rectangle whose height and width are powers of two; rectangles wrap
around the edges of the map. Groups can be obtained in three ways:

  - GroupsFromExpr derives one group per term of an already simplified SOP formula;
  - SelectGroups searches them geometrically, essential groups first, then greedily;
  - SelectMinimal searches a minimum number of groups exactly.

FromMinterms and FromFormula compute the minimal SOP and POS forms of a function
along with the groups of its map.
*/
package kmap
