// Package tender holds the rules of the tender lifecycle: the status state
// machine, score sheet arithmetic, the vendor workflow gate, bid ranking, award
// preconditions and post-award bookkeeping. It performs no I/O; callers load
// records, apply these rules and persist the result.
package tender
