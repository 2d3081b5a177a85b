// Package services implements the workflow layer: the operations that
// advance entity state with validation, role checks and audit fields.
// Services wrap the store's primitive mutations with id generation and
// field defaults; all role enforcement lives here, driven by a caller
// role argument, so the HTTP layer stays a thin translation.
package services

const dateLayout = "2006-01-02"
