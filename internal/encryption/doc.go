// Package encryption applies the shift cipher to files.
// Features concurrent processing of many files, an optional envelope that records
// the encryption-time encoding, and atomic output writes.
package encryption
