// Package actor implements the authenticated identity model of the
// marketplace. An Actor is an immutable identity with exactly one Role;
// the role decides which order lifecycle transitions the actor may request,
// and for restaurant admins the actor additionally carries the identifier
// of the restaurant it operates.
package actor
