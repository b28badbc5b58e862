// Package ledger reads historical payment records and folds them into net
// per-participant balances, and writes settlement transfers back out.
//
// Both directions use one line-delimited JSON record shape:
//
//	{"from":"alice","to":"bob","amt":25}
//
// On input the record means "alice paid bob 25" (amt is non-negative in the
// payment sense); on output it means "alice must pay bob 25" and amt is
// always strictly positive.
//
// Folding: each payment decreases the payer's balance and increases the
// receiver's by amt. Participants whose positions cancel to zero are dropped
// from the result; the remaining balances are returned sorted by participant
// ID so downstream planning is independent of record order.
//
// A record that fails to decode aborts the whole read with
// ErrMalformedRecord — a partially read ledger must never produce a partial
// settlement.
package ledger
