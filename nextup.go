/*
Package nextup randomizes the speaking order for recurring meetings and keeps
everyone honest about how long they talk.

The binary reads a plain-text file of names (one per line), shuffles it, and
drops into a terminal view showing the order, the current speaker, a per-person
stopwatch and an overall meeting countdown. Navigation and reshuffling happen
live with the keyboard; nothing is ever written back to disk.
*/
package nextup

// Version is the current release of nextup.
// Overridden at build time via -ldflags "-X github.com/aretw0/nextup.Version=...".
var Version = "0.2.0-dev"
