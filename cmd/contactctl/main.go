// Command contactctl submits a contact message from the terminal,
// using the same flow as the website form: POST to the configured
// endpoint, or print a mailto: URI when no endpoint is set or the call
// fails.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/curafehealth/website-backend/internal/config"
	"github.com/curafehealth/website-backend/internal/contactform"
	"github.com/curafehealth/website-backend/internal/validator"
)

func main() {
	endpoint := flag.String("endpoint", "", "contact endpoint URL (empty = mailto fallback)")
	to := flag.String("to", config.DefaultToEmail, "fallback recipient address")
	name := flag.String("name", "", "sender name (required)")
	email := flag.String("email", "", "sender email (required)")
	company := flag.String("company", "", "company (optional)")
	phone := flag.String("phone", "", "phone (optional)")
	message := flag.String("message", "", "message body (required)")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	flag.Parse()

	submitter := contactform.NewSubmitter(*endpoint, *to)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := submitter.Submit(ctx, contactform.Fields{
		Name:    *name,
		Email:   *email,
		Company: *company,
		Phone:   *phone,
		Message: *message,
	})
	if err != nil {
		if errors.Is(err, validator.ErrMissingRequiredFields) {
			fmt.Fprintln(os.Stderr, "Please fill in name, email and message before sending.")
		} else {
			fmt.Fprintln(os.Stderr, "submit failed:", err)
		}
		os.Exit(1)
	}

	switch result.State {
	case contactform.StateSuccess:
		fmt.Printf("Message sent, submission id %d\n", result.ID)
	case contactform.StateWarning:
		fmt.Printf("Message stored (id %d) with warning: %s\n", result.ID, result.Warning)
	case contactform.StateMailto:
		fmt.Println("No endpoint reachable. Open this link in your mail client:")
		fmt.Println(result.MailtoURI)
	default:
		fmt.Println("state:", result.State)
	}
}
