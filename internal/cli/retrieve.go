package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/secretvault/internal/common"
	"github.com/dmitrijs2005/secretvault/internal/services"
)

// Retrieve prompts for a username and passkey and prints the stored text.
//
// A wrong passkey prints the attempt count; when the limit is hit the
// lockout warning follows and the REPL carries on from the main prompt.
func (a *App) Retrieve(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter your username for retrieval", a.out)
	if err != nil {
		return err
	}

	passkey, err := getPassword(a.reader, "Enter your passkey", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passkey)

	text, err := a.secretService.Retrieve(ctx, a.session, username, passkey)

	var authErr *services.AuthError
	switch {
	case err == nil:
		fmt.Fprintf(a.out, "Retrieved Data: %s\n", text)
	case errors.As(err, &authErr):
		fmt.Fprintf(a.out, "Invalid passkey! (attempt %d/%d)\n", authErr.Attempts, authErr.MaxAttempts)
		if authErr.Lockout {
			fmt.Fprintln(a.out, "Maximum attempts reached. Returning to main menu.")
		}
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintln(a.out, "No data found for user")
	case errors.Is(err, common.ErrDecryption):
		fmt.Fprintln(a.out, "Stored data could not be decrypted.")
	default:
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
	return err
}
