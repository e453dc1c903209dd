// Package runlock keeps two real runs from organizing the same directory at
// once. Locks are flock(2) files under <state_dir>/locks named after a hash
// of the absolute target path, so nothing is ever written into the target.
package runlock
