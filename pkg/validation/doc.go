/*
Package validation holds the pure field validators consumed by the
presentation layer before it calls into the auth and ticket managers.

Validators return an ordered []FieldError instead of an error so the
caller can render every violation at once. The ticket bounds here are
the canonical rule set for the application; the managers themselves
only enforce enum membership.
*/
package validation
