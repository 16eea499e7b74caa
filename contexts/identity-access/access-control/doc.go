// Package accesscontrol centralizes every authorization decision in formdesk.
//
// Layering:
// - domain: Profile/Decision entities, the rule evaluator, sentinel errors
// - application: the profile-gateway Guard, admin commands, read queries, audit relay
// - ports: stable boundaries for persistence, credential provisioning, events
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - All role/ban predicates live in domain/services.Evaluate; handlers and
//   other contexts consume decisions, they never re-derive them.
// - Do not import other context adapters into domain/application; the one
//   sanctioned cross-context edge is queries.SubmissionAccessQuery, which
//   implements the intake context's Authorizer port.
package accesscontrol
