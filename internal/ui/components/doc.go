// Package components provides the terminal renditions of the kit: Button,
// ButtonGroup, TextInput and TextArea.
//
// Text components are controlled. The owner keeps the value, passes it into
// Update and View, and learns about edits through field.Callbacks. The
// bubbles widget inside each component is reset to the owner's value before
// every render, so an edit the field rejects never shows up on screen.
package components
