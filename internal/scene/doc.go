// Package scene records renders as immutable scenes and keeps a
// navigable history of them.
//
// A [Sequencer] owns an append-only list of [Scene] values plus a cursor.
// Discrete viewport changes go through [Sequencer.Push]; smooth transitions
// go through [Sequencer.Animate], which renders a fixed number of
// interpolated frames and keeps only the last one.
//
// Sequencer instances are NOT thread-safe. Renders are issued one at a
// time by construction.
package scene
