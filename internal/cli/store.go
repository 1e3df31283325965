package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/secretvault/internal/common"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getMultiline  = GetMultiline
	getPassword   = GetPassword
)

// Store prompts for a username, the text to protect and a passkey, then
// saves them through the secret service.
//
// The outcome is printed for the user and also returned. The passkey is
// wiped before returning.
func (a *App) Store(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter your username", a.out)
	if err != nil {
		return err
	}

	text, err := getMultiline(a.reader, "Enter the text to store", a.out)
	if err != nil {
		return err
	}

	passkey, err := getPassword(a.reader, "Enter your passkey", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passkey)

	missing := username == "" || text == "" || len(passkey) == 0

	err = a.secretService.Store(ctx, username, text, passkey)
	switch {
	case err == nil:
		fmt.Fprintln(a.out, "Data stored successfully!")
	case errors.Is(err, common.ErrValidation) && missing:
		fmt.Fprintln(a.out, "Please fill in all fields.")
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintf(a.out, "Invalid input: %v\n", err)
	case errors.Is(err, common.ErrStorageWrite):
		fmt.Fprintf(a.out, "Data kept for this session but could not be saved: %v\n", err)
	default:
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
	return err
}
