// Package veria provides the official Go client for the Veria Compliance API.
//
// Veria screens wallet addresses, ENS names, and IBANs for sanctions, PEP,
// and other AML risk, returning a numeric score and a categorical risk tier.
//
// # Quick Start
//
//	client, err := veria.NewClient(veria.Config{
//	    APIKey: os.Getenv("VERIA_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	result, err := client.Screen(ctx, "vitalik.eth")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.ShouldBlock() {
//	    fmt.Println("address blocked for compliance")
//	}
package veria

import "errors"

// Version is the SDK version.
const Version = "0.1.0"

// Per-kind sentinel errors. Every *Error returned by the SDK unwraps to
// exactly one of these, so callers can branch with errors.Is in addition to
// matching on Error.Code.
var (
	ErrConfiguration  = errors.New("invalid client configuration")
	ErrAuthentication = errors.New("API key rejected")
	ErrRateLimit      = errors.New("rate limit exceeded")
	ErrTimeout        = errors.New("request timed out")
	ErrValidation     = errors.New("input rejected")
	ErrService        = errors.New("screening service failure")
	ErrClientClosed   = errors.New("client is closed")
	ErrConnection     = errors.New("connection to screening service failed")
)
