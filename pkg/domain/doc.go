// Package domain contains the core data model of the careflow widget:
// the conversation log, preference and selection state, the cart, and the
// checkout step machine types.
//
// Types here are plain data. All behavior (how state evolves in response to
// user intents) lives in internal/runtime and the Widget facade.
package domain
