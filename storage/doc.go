// Package storage provides attachment sources for the mailer: a local
// filesystem source and an S3-compatible object storage source. Both satisfy
// the herald.FileSource interface.
package storage
