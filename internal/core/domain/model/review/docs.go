// Package review contains the Review entity. Restaurant ratings are derived
// from reviews and never stored separately.
package review
