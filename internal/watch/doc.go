// Package watch follows a directory and processes video files as they
// appear.
//
// New and modified files are held for a settle delay so in-progress
// downloads finish before probing. One watcher per directory is enforced
// with a lock file under the system temp directory.
package watch
