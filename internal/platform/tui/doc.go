// Package tui provides the Bubble Tea presentation of the game: the session
// model, key mapping, gallows and letter board drawing, the word pack menu
// and an SSH server built on Wish.
package tui
