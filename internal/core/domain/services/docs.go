// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the marketplace. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PricingService: A domain service that prices catalog selections into cart
//     lines and cart lines into order totals
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
