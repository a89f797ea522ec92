// Package main provides the entry point for admintok.
//
// The tool produces one hex-encoded admin token bound to the current
// calendar day:
//
//	admintok generate              # secret from env or prompt
//	admintok generate --secret s   # secret from flag
//	admintok -q generate           # bare token for shell capture
//	admintok --env-file .env ...   # read the server's own .env
//	admintok keygen                # provision a fresh shared secret
//	admintok version               # build information
//
// The shared secret must match the verifying server's ADMIN_SECRET
// exactly; the token is only valid for the day it was generated on.
package main
