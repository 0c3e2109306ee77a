/*
Package persistent is the home of immutable persistent data structures.

Immutable persistent data structures can be “modified” efficiently, leaving the
original unchanged. Every modification creates a new incarnation of the
structure, which shares all unaffected parts with the original (structural
sharing). Making such a copy is cheap in terms of space- and time-complexity,
and concurrent readers never need locking.

Sub-packages:

	bst   an unbalanced binary search tree, mapping unique keys to values

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package persistent
