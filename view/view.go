// Package view runs an allofyou Session in an Ebitengine window: it reads
// mouse, keyboard, and wheel input, advances the session once per tick, and
// draws the panels and connector lines.
//
// Space toggles between face and mind-map mode, the wheel zooms, dragging a
// panel in mind-map mode moves it, and a click in face mode saves a snapshot.
package view
