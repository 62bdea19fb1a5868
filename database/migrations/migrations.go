// Package migrations declares the schema history. Each file registers one
// migration in an init(); importing this package for side effects (as cmd
// does) loads the whole history.
package migrations
