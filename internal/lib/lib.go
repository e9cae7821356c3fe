// Package lib groups modules that do not fit strictly into other layers:
// background job processing (Redis/Asynq) in lib/job and the email
// client (Resend) in lib/email.
package lib
