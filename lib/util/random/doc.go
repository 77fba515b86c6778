// Package random provides a seeded, reproducible pseudo-random generator
// (xoshiro256++) for non-cryptographic uses: jitter, shuffling, test
// scheduling. Given the same seed it yields the same sequence, which is the
// point — do NOT use it for key material or anything security-relevant.
//
// Seeding is an explicit, standalone concern. Nothing in this module seeds
// the generator behind the caller's back; a process that wants
// unpredictable sequences does so itself, typically from the raw clock:
//
//	random.Seed(monotime.RawNS())
//
// The package-level functions operate on a shared process-wide Source;
// subsystems needing isolated sequences construct their own with New.
package random
