/*
Package partition implements the index arithmetic behind data partitioning.

Every function here works on observation counts, labels and index lists only;
none of them touches a container. Indices are zero based and spans are
half-open [Lo,Hi).
*/
package partition
