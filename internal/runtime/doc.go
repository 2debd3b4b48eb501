// Package runtime implements the interaction state machines of the widget:
// the conversation engine, the product selection set, and the cart/checkout
// step machine. The Widget facade in the root package orchestrates them.
package runtime
