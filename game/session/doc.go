// Package session manages puzzle session lifecycle: creation, lookup,
// deletion, and optional persistence so a suspended game can be resumed
// later or survive a server restart.
package session
