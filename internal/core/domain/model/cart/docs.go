// Package cart implements the in-progress selection a customer builds before
// checkout. A Cart is an ordered sequence of priced lines scoped to a single
// session; lines snapshot the item name and resolved price at the moment they
// are added, so later catalog edits cannot change what was agreed. On
// checkout the lines move into an order and the cart is left empty.
package cart
