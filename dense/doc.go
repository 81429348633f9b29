/*
Package dense provides numeric data containers for the data package.

Matrix and Vector wrap gonum dense storage, Array is a row-major N-d array.
All of them default to the last axis as the observation axis, reject
Undefined with a capability error, and follow one shape contract: a single
observation drops the observation axis, a batch keeps it with the batch
length. They support in-place extraction, so data.EachObs and data.EachBatch
reuse their buffers.
*/
package dense
